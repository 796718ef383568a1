package usecase

import (
	"sort"

	"github.com/skyroute/skyroute/internal/domain"
)

// Best-value weights: price dominates, duration breaks the rest.
const (
	weightPrice    = 0.6
	weightDuration = 0.4
)

// SortOffers returns a new slice ordered by the given mode. Sorting is stable
// and never mutates the input. An empty or single-element slice is returned
// as a copy unchanged.
func SortOffers(offers []domain.FlightOffer, mode domain.SortMode) []domain.FlightOffer {
	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	if len(result) <= 1 {
		return result
	}

	switch mode {
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalDurationMinutes() < result[j].TotalDurationMinutes()
		})
	case domain.SortByBestValue:
		scores := bestValueScores(result)
		sort.SliceStable(result, func(i, j int) bool {
			return scores[result[i].ID] < scores[result[j].ID]
		})
	default:
		// SortByPrice, also the fallback for unknown modes
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceTotal < result[j].PriceTotal
		})
	}

	return result
}

// bestValueScores computes the composite score for each offer:
//
//	score = 0.6*normPrice + 0.4*normDuration
//
// normalized over the given set, 0 = best. When all prices (or durations) are
// equal the range denominator is treated as 1, collapsing that term to zero.
func bestValueScores(offers []domain.FlightOffer) map[string]float64 {
	minPrice, maxPrice := priceRange(offers)
	minDur, maxDur := durationRange(offers)

	pRange := maxPrice - minPrice
	if pRange == 0 {
		pRange = 1
	}
	durRange := float64(maxDur - minDur)
	if durRange == 0 {
		durRange = 1
	}

	scores := make(map[string]float64, len(offers))
	for _, f := range offers {
		normPrice := (f.PriceTotal - minPrice) / pRange
		normDur := float64(f.TotalDurationMinutes()-minDur) / durRange
		scores[f.ID] = weightPrice*normPrice + weightDuration*normDur
	}
	return scores
}

// priceRange finds the minimum and maximum total price across offers.
// The callers guarantee a non-empty slice.
func priceRange(offers []domain.FlightOffer) (min, max float64) {
	min, max = offers[0].PriceTotal, offers[0].PriceTotal
	for _, f := range offers[1:] {
		if f.PriceTotal < min {
			min = f.PriceTotal
		}
		if f.PriceTotal > max {
			max = f.PriceTotal
		}
	}
	return min, max
}

// durationRange finds the minimum and maximum summed leg duration.
func durationRange(offers []domain.FlightOffer) (min, max int) {
	min, max = offers[0].TotalDurationMinutes(), offers[0].TotalDurationMinutes()
	for _, f := range offers[1:] {
		d := f.TotalDurationMinutes()
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
