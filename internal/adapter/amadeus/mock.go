package amadeus

import (
	"context"
	"strings"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

// mockAirports is the static airport list served in mock mode.
var mockAirports = []domain.Airport{
	{ID: "EVN", IATACode: "EVN", Name: "Zvartnots International", CityName: "Yerevan", CountryCode: "AM"},
	{ID: "LCA", IATACode: "LCA", Name: "Larnaca International", CityName: "Larnaca", CountryCode: "CY"},
	{ID: "FCO", IATACode: "FCO", Name: "Fiumicino", CityName: "Rome", CountryCode: "IT"},
}

// MockSource serves a fixed airport list and empty flight results without any
// upstream calls or credentials. It backs deployments running in mock mode.
type MockSource struct{}

// NewMockSource creates a MockSource.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// SearchOffers always returns an empty result set.
func (m *MockSource) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	return []domain.FlightOffer{}, nil
}

// SearchAirports filters the static list by a case-insensitive substring
// match on code, name, and city.
func (m *MockSource) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return []domain.Airport{}, nil
	}

	result := make([]domain.Airport, 0, len(mockAirports))
	for _, a := range mockAirports {
		if strings.Contains(strings.ToLower(a.IATACode), needle) ||
			strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.CityName), needle) {
			result = append(result, a)
		}
	}
	return result, nil
}

// FetchPage implements usecase.PageSource with an empty page.
func (m *MockSource) FetchPage(ctx context.Context, query domain.SearchQuery, page, pageSize int) (usecase.Page, error) {
	return usecase.Page{Flights: []domain.FlightOffer{}}, nil
}

var _ usecase.PageSource = (*MockSource)(nil)
