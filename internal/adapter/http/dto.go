package http

import (
	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	OK   bool `json:"ok"`
	Mock bool `json:"mock"`
}

// AirportDTO is one autocomplete option, carrying the display label alongside
// the raw location fields.
type AirportDTO struct {
	domain.Airport
	Label string `json:"label"`
}

// OfferDTO is one offer in a search response, annotated with its badges
// relative to the whole derived result set.
type OfferDTO struct {
	domain.FlightOffer
	Badges []usecase.Badge `json:"badges,omitempty"`
}

// SearchResponse is the full flight search payload: the (optionally paged)
// offer list plus the derived facets the results view needs.
type SearchResponse struct {
	// Data is the filtered, sorted offer list, or one page of it
	Data []OfferDTO `json:"data"`

	// Total is the size of the whole filtered list, across all pages
	Total int `json:"total"`

	// HasMore reports whether pages beyond this one exist
	HasMore bool `json:"hasMore"`

	// Page is the 1-based page served
	Page int `json:"page"`

	// Airlines is the live airline facet over the unfiltered result set
	Airlines []usecase.AirlineCount `json:"airlines"`

	// PriceBounds seeds the price-range control from the unfiltered set
	PriceBounds usecase.PriceBoundsResult `json:"priceBounds"`

	// Chart is the hourly price-trend series over the filtered set
	Chart []usecase.ChartPoint `json:"chart"`
}
