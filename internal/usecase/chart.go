package usecase

import (
	"math"
	"sort"

	"github.com/skyroute/skyroute/internal/domain"
)

// PriceBoundsResult is the raw min/max price over a result set, used to seed
// the price-range slider.
type PriceBoundsResult struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ChartPoint is one hour bucket of the price-trend chart.
type ChartPoint struct {
	// T is the bucket label, the outbound departure truncated to the hour
	// as "YYYY-MM-DDTHH:00"
	T string `json:"t"`

	// Median is the lower-middle price of the bucket (floor median)
	Median float64 `json:"median"`

	// Min and Max are the bucket's price extremes
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceBounds returns the floored minimum and ceiled maximum total price over
// the raw, unfiltered offer list. An empty list yields {0, 0}.
func PriceBounds(offers []domain.FlightOffer) PriceBoundsResult {
	if len(offers) == 0 {
		return PriceBoundsResult{}
	}

	min, max := priceRange(offers)
	return PriceBoundsResult{
		Min: int(math.Floor(min)),
		Max: int(math.Ceil(max)),
	}
}

// ChartSeries buckets the filtered offers by the outbound leg's departure
// hour and computes per-bucket price statistics. The median is the "floor"
// median: the element at index len/2 of the ascending sort, so even-length
// buckets take a single middle element instead of averaging two. Buckets are sorted
// ascending by label. Offers without a usable outbound timestamp are skipped.
func ChartSeries(filtered []domain.FlightOffer) []ChartPoint {
	buckets := make(map[string][]float64)

	for _, f := range filtered {
		label := hourBucket(f)
		if label == "" {
			continue
		}
		buckets[label] = append(buckets[label], f.PriceTotal)
	}

	points := make([]ChartPoint, 0, len(buckets))
	for label, prices := range buckets {
		sort.Float64s(prices)
		points = append(points, ChartPoint{
			T:      label,
			Median: prices[len(prices)/2],
			Min:    prices[0],
			Max:    prices[len(prices)-1],
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].T < points[j].T })

	return points
}

// hourBucket truncates the outbound departure timestamp to the hour,
// e.g. "2026-09-15T08:30:00" -> "2026-09-15T08:00". Returns "" when the
// timestamp is missing or too short to carry an hour.
func hourBucket(f domain.FlightOffer) string {
	if len(f.Legs) == 0 {
		return ""
	}
	ts := f.Legs[0].DepartureDateTime
	if len(ts) < 13 {
		return ""
	}
	return ts[:13] + ":00"
}
