package usecase

import (
	"sort"

	"github.com/skyroute/skyroute/internal/domain"
)

// AirlineCount is one entry of the airline facet shown next to the results.
type AirlineCount struct {
	// Code is the validating airline code
	Code string `json:"code"`

	// Count is how many offers that airline validates under the current
	// price and stops filters
	Count int `json:"count"`
}

// AvailableAirlines counts offers per validating airline over the unfiltered
// input, applying only the price and stops predicates - never the airline
// predicate. Selecting an airline must not hide it (or its alternatives) from
// its own facet, so the counts stay live while the user toggles carriers.
// Results are sorted by descending count, ties broken by code.
func AvailableAirlines(offers []domain.FlightOffer, filters domain.FilterState) []AirlineCount {
	counts := make(map[string]int)

	for _, f := range offers {
		if !filters.MatchesPrice(f) {
			continue
		}
		if !filters.MatchesStops(f) {
			continue
		}
		counts[f.ValidatingAirline]++
	}

	result := make([]AirlineCount, 0, len(counts))
	for code, count := range counts {
		result = append(result, AirlineCount{Code: code, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Code < result[j].Code
	})

	return result
}
