package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

func TestAvailableAirlines(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 200, 300, "BA", 0),
		makeOffer("b", 150, 200, "BA", 1),
		makeOffer("c", 300, 250, "LH", 0),
		makeOffer("d", 450, 400, "AF", 0),
	}

	got := usecase.AvailableAirlines(offers, domain.DefaultFilters())

	assert.Equal(t, []usecase.AirlineCount{
		{Code: "BA", Count: 2},
		{Code: "AF", Count: 1},
		{Code: "LH", Count: 1},
	}, got, "descending count, ties by code")
}

func TestAvailableAirlinesIgnoresAirlineSelection(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 200, 300, "BA", 0),
		makeOffer("b", 150, 200, "LH", 0),
	}

	unselected := usecase.AvailableAirlines(offers, domain.DefaultFilters())
	selected := usecase.AvailableAirlines(offers, domain.FilterState{
		Stops:    domain.StopsAny,
		Airlines: []string{"BA"},
	})

	assert.Equal(t, unselected, selected, "selecting an airline must not change the facet")
}

func TestAvailableAirlinesAppliesPriceAndStops(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 200, 300, "BA", 0),
		makeOffer("b", 900, 200, "BA", 0), // priced out
		makeOffer("c", 150, 250, "LH", 1), // filtered by stops
	}

	got := usecase.AvailableAirlines(offers, domain.FilterState{
		Stops:    domain.StopsDirect,
		PriceMax: float64Ptr(500),
	})

	assert.Equal(t, []usecase.AirlineCount{{Code: "BA", Count: 1}}, got)
}

func TestAvailableAirlinesEmpty(t *testing.T) {
	got := usecase.AvailableAirlines(nil, domain.DefaultFilters())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
