// Package usecase implements the derivation pipeline for flight search
// results: filtering, sorting, scoring, badges, pagination, and the
// search-state store. Everything here operates on already-normalized offers
// and cannot fail; derivations are pure and recomputed from scratch on every
// input change.
package usecase

import (
	"github.com/skyroute/skyroute/internal/domain"
)

// ApplyFilters returns the offers that pass the active filters, in their
// original order. The predicates run in a fixed sequence - price, then stops,
// then airline - because the airline-availability derivation reuses the first
// two stages. The input slice is never mutated.
func ApplyFilters(offers []domain.FlightOffer, filters domain.FilterState) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(offers))

	for _, f := range offers {
		if !filters.MatchesPrice(f) {
			continue
		}
		if !filters.MatchesStops(f) {
			continue
		}
		if !filters.MatchesAirlines(f) {
			continue
		}
		result = append(result, f)
	}

	return result
}
