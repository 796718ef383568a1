// Package domain contains the core entities and rules for the flight search
// system. These types are upstream-agnostic and form the foundation upon which
// all other components are built.
package domain

import "regexp"

// PlaceholderCarrier is used when the upstream record carries no validating
// airline code.
const PlaceholderCarrier = "—"

// FlightOffer is one priced itinerary returned by a search.
type FlightOffer struct {
	// ID is an opaque identifier, unique within a single search response
	ID string `json:"id"`

	// PriceTotal is the total price for the whole itinerary
	PriceTotal float64 `json:"priceTotal"`

	// Currency is the ISO 4217 currency code (e.g. "EUR")
	Currency string `json:"currency"`

	// ValidatingAirline is the carrier code of the validating airline,
	// or PlaceholderCarrier when absent upstream
	ValidatingAirline string `json:"validatingAirline"`

	// Legs holds one leg for a one-way trip, two for a round trip.
	// The first leg is outbound; the second, if present, is the return.
	Legs []FlightLeg `json:"legs"`
}

// FlightLeg is one direction of travel within an offer.
type FlightLeg struct {
	// StopsCount is the number of intermediate landings (segments - 1)
	StopsCount int `json:"stopsCount"`

	// DepartureDateTime is the ISO 8601 timestamp of the first segment
	DepartureDateTime string `json:"departureDateTime"`

	// ArrivalDateTime is the ISO 8601 timestamp of the last segment
	ArrivalDateTime string `json:"arrivalDateTime"`

	// DurationMinutes is the total leg duration in minutes
	DurationMinutes int `json:"durationMinutes"`

	// Segments are the flown hops, in order, length >= 1 for valid data
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop flown hop within a leg.
type Segment struct {
	// From and To are IATA airport codes; may be empty when upstream data
	// is missing
	From string `json:"from"`
	To   string `json:"to"`

	// DepartAt and ArriveAt are ISO 8601 timestamps
	DepartAt string `json:"departAt"`
	ArriveAt string `json:"arriveAt"`

	// Carrier is the operating airline code
	Carrier string `json:"carrier"`

	// FlightNumber is the carrier's flight number
	FlightNumber string `json:"flightNumber"`
}

// TotalDurationMinutes sums the duration of all legs.
func (f *FlightOffer) TotalDurationMinutes() int {
	total := 0
	for _, leg := range f.Legs {
		total += leg.DurationMinutes
	}
	return total
}

// IsRoundTrip reports whether the offer has a return leg.
func (f *FlightOffer) IsRoundTrip() bool {
	return len(f.Legs) == 2
}

// Duration token groups per ISO 8601, e.g. "PT2H35M", "PT45M", "PT3H".
var (
	durationHoursPattern   = regexp.MustCompile(`(\d+)H`)
	durationMinutesPattern = regexp.MustCompile(`(\d+)M`)
)

// ParseDurationMinutes converts an ISO 8601 duration token of the form
// PT[nH][nM] to total minutes. A missing hour or minute component counts as
// zero, and malformed input yields 0; it never fails.
func ParseDurationMinutes(s string) int {
	total := 0
	if m := durationHoursPattern.FindStringSubmatch(s); m != nil {
		total += atoi(m[1]) * 60
	}
	if m := durationMinutesPattern.FindStringSubmatch(s); m != nil {
		total += atoi(m[1])
	}
	return total
}

// atoi converts a digit-only string to an int. The callers only pass regexp
// captures of \d+, so overflow aside there is no failure mode.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
