package usecase_test

import (
	"github.com/skyroute/skyroute/internal/domain"
)

// makeOffer builds an offer with one leg per entry of stops, splitting the
// total duration evenly across the legs.
func makeOffer(id string, price float64, durationMinutes int, airline string, stops ...int) domain.FlightOffer {
	if len(stops) == 0 {
		stops = []int{0}
	}

	legs := make([]domain.FlightLeg, 0, len(stops))
	perLeg := durationMinutes / len(stops)
	for i, s := range stops {
		d := perLeg
		if i == 0 {
			d = durationMinutes - perLeg*(len(stops)-1)
		}
		legs = append(legs, domain.FlightLeg{
			StopsCount:        s,
			DepartureDateTime: "2026-09-15T08:30:00",
			ArrivalDateTime:   "2026-09-15T12:00:00",
			DurationMinutes:   d,
		})
	}

	return domain.FlightOffer{
		ID:                id,
		PriceTotal:        price,
		Currency:          "EUR",
		ValidatingAirline: airline,
		Legs:              legs,
	}
}

// departingAt overrides the outbound departure timestamp.
func departingAt(f domain.FlightOffer, ts string) domain.FlightOffer {
	f.Legs[0].DepartureDateTime = ts
	return f
}

func float64Ptr(v float64) *float64 { return &v }
