package usecase

import (
	"math"

	"github.com/skyroute/skyroute/internal/domain"
)

// Badge labels an offer relative to everything else that has been loaded.
type Badge string

// Available badges.
const (
	// BadgeCheapest marks the lowest-priced offer
	BadgeCheapest Badge = "cheapest"

	// BadgeFastest marks the shortest offer
	BadgeFastest Badge = "fastest"

	// BadgeBest marks an offer that is both cheapest and fastest;
	// it replaces the two individual badges
	BadgeBest Badge = "best"
)

// Comparison tolerances. Prices within a cent and durations within a minute
// of the minimum count as ties.
const (
	priceEpsilon    = 0.01
	durationEpsilon = 1
)

// Badges classifies one offer against a comparison set - all currently loaded
// offers, not just the filtered-visible ones. A set of zero or one offers
// yields no badges, since the labels are only meaningful as a relative
// ranking. When an offer is both cheapest and fastest only BadgeBest is
// emitted.
func Badges(offer domain.FlightOffer, comparison []domain.FlightOffer) []Badge {
	if len(comparison) <= 1 {
		return nil
	}

	minPrice := comparison[0].PriceTotal
	minDuration := comparison[0].TotalDurationMinutes()
	for _, f := range comparison[1:] {
		if f.PriceTotal < minPrice {
			minPrice = f.PriceTotal
		}
		if d := f.TotalDurationMinutes(); d < minDuration {
			minDuration = d
		}
	}

	cheapest := math.Abs(offer.PriceTotal-minPrice) < priceEpsilon
	fastest := math.Abs(float64(offer.TotalDurationMinutes()-minDuration)) < durationEpsilon

	switch {
	case cheapest && fastest:
		return []Badge{BadgeBest}
	case cheapest:
		return []Badge{BadgeCheapest}
	case fastest:
		return []Badge{BadgeFastest}
	default:
		return nil
	}
}
