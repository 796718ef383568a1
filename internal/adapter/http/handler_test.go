package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/skyroute/internal/adapter/http/response"
	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

// stubProvider serves canned data or a canned error.
type stubProvider struct {
	offers   []domain.FlightOffer
	airports []domain.Airport
	err      error
}

func (s *stubProvider) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

func (s *stubProvider) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.airports, nil
}

func testOffer(id string, price float64, durationMinutes int, airline string) domain.FlightOffer {
	return domain.FlightOffer{
		ID:                id,
		PriceTotal:        price,
		Currency:          "EUR",
		ValidatingAirline: airline,
		Legs: []domain.FlightLeg{{
			StopsCount:        0,
			DepartureDateTime: "2026-09-15T08:30:00",
			ArrivalDateTime:   "2026-09-15T12:00:00",
			DurationMinutes:   durationMinutes,
		}},
	}
}

func threeOffers() []domain.FlightOffer {
	return []domain.FlightOffer{
		testOffer("a", 200, 300, "BA"),
		testOffer("b", 150, 200, "LH"),
		testOffer("c", 300, 250, "AF"),
	}
}

func manyOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)
	for i := range offers {
		offers[i] = testOffer(fmt.Sprintf("offer-%d", i+1), 100+float64(i), 200+i, "BA")
	}
	return offers
}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	RegisterRoutes(e, h)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeSearch(t *testing.T, rec *httptest.ResponseRecorder) SearchResponse {
	t.Helper()
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	h := NewHandler(&stubProvider{}, true, nil)

	rec := doRequest(h, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.True(t, resp.Mock)
}

func TestAirports(t *testing.T) {
	h := NewHandler(&stubProvider{airports: []domain.Airport{
		{ID: "AEVN", IATACode: "EVN", Name: "Zvartnots International", CityName: "Yerevan", CountryCode: "AM"},
	}}, false, nil)

	rec := doRequest(h, "/api/airports?q=yerevan")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []AirportDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "EVN", resp.Data[0].IATACode)
	assert.Equal(t, "EVN — Yerevan, AM", resp.Data[0].Label)
}

func TestAirportsMissingKeyword(t *testing.T) {
	h := NewHandler(&stubProvider{}, false, nil)

	rec := doRequest(h, "/api/airports")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, response.MsgMissingKeyword, resp.Error)
}

func TestSearchFlights(t *testing.T) {
	h := NewHandler(&stubProvider{offers: threeOffers()}, false, nil)

	rec := doRequest(h, "/api/flights/search?origin=EVN&destination=LCA&departDate=2026-09-15")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeSearch(t, rec)

	require.Len(t, resp.Data, 3)
	assert.Equal(t, "b", resp.Data[0].ID, "default sort is price ascending")
	assert.Equal(t, "a", resp.Data[1].ID)
	assert.Equal(t, "c", resp.Data[2].ID)

	assert.Equal(t, []usecase.Badge{usecase.BadgeBest}, resp.Data[0].Badges,
		"cheapest and fastest offer carries only the combined badge")
	assert.Empty(t, resp.Data[1].Badges)
	assert.Empty(t, resp.Data[2].Badges)

	assert.Equal(t, 3, resp.Total)
	assert.False(t, resp.HasMore)
	assert.Equal(t, 1, resp.Page)

	assert.Equal(t, []usecase.AirlineCount{
		{Code: "AF", Count: 1}, {Code: "BA", Count: 1}, {Code: "LH", Count: 1},
	}, resp.Airlines)
	assert.Equal(t, usecase.PriceBoundsResult{Min: 150, Max: 300}, resp.PriceBounds)

	require.Len(t, resp.Chart, 1, "all three depart in the same hour bucket")
	assert.Equal(t, "2026-09-15T08:00", resp.Chart[0].T)
	assert.Equal(t, 150.0, resp.Chart[0].Min)
	assert.Equal(t, 300.0, resp.Chart[0].Max)
}

func TestSearchFlightsFilters(t *testing.T) {
	h := NewHandler(&stubProvider{offers: threeOffers()}, false, nil)

	rec := doRequest(h, "/api/flights/search?origin=EVN&destination=LCA&departDate=2026-09-15&airlines=BA&sort=duration")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeSearch(t, rec)

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a", resp.Data[0].ID)
	assert.Equal(t, 1, resp.Total)

	// The airline facet ignores the airline selection itself.
	assert.Len(t, resp.Airlines, 3)
}

func TestSearchFlightsPagination(t *testing.T) {
	h := NewHandler(&stubProvider{offers: manyOffers(25)}, false, nil)

	base := "/api/flights/search?origin=EVN&destination=LCA&departDate=2026-09-15"

	page1 := decodeSearch(t, doRequest(h, base+"&page=1"))
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, 25, page1.Total)
	assert.True(t, page1.HasMore)
	assert.Equal(t, 1, page1.Page)

	page3 := decodeSearch(t, doRequest(h, base+"&page=3"))
	assert.Len(t, page3.Data, 5)
	assert.False(t, page3.HasMore)
	assert.Equal(t, 3, page3.Page)

	beyond := decodeSearch(t, doRequest(h, base+"&page=9"))
	assert.Empty(t, beyond.Data)
	assert.False(t, beyond.HasMore)
}

func TestSearchFlightsEmptyResult(t *testing.T) {
	h := NewHandler(&stubProvider{offers: []domain.FlightOffer{}}, false, nil)

	rec := doRequest(h, "/api/flights/search?origin=EVN&destination=LCA&departDate=2026-09-15")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeSearch(t, rec)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, usecase.PriceBoundsResult{Min: 0, Max: 0}, resp.PriceBounds)
}

func TestSearchFlightsValidation(t *testing.T) {
	h := NewHandler(&stubProvider{}, false, nil)

	rec := doRequest(h, "/api/flights/search?destination=LCA&departDate=2026-09-15")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "origin")
}

func TestSearchFlightsErrorMapping(t *testing.T) {
	base := "/api/flights/search?origin=EVN&destination=LCA&departDate=2026-09-15"

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, response.MsgRateLimited},
		{"upstream validation detail", fmt.Errorf("%w: Date/Time is in the past", domain.ErrInvalidRequest),
			http.StatusBadRequest, "Date/Time is in the past"},
		{"missing credentials", domain.ErrMissingCredentials, http.StatusInternalServerError, response.MsgMissingCredentials},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError, response.MsgSearchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubProvider{err: tt.err}, false, nil)

			rec := doRequest(h, base)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp response.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}
