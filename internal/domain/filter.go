package domain

import "strings"

// StopsFilter restricts offers by the stop count of their legs.
type StopsFilter string

// Available stops filters.
const (
	// StopsAny passes every offer
	StopsAny StopsFilter = "any"

	// StopsDirect requires every leg to be non-stop
	StopsDirect StopsFilter = "0"

	// StopsOne requires every leg to have exactly one stop
	StopsOne StopsFilter = "1"

	// StopsTwoPlus requires every leg to have two or more stops
	StopsTwoPlus StopsFilter = "2+"
)

// IsValid checks if the stops filter is a valid value.
func (s StopsFilter) IsValid() bool {
	switch s {
	case StopsAny, StopsDirect, StopsOne, StopsTwoPlus:
		return true
	default:
		return false
	}
}

// ParseStopsFilter converts a string to a StopsFilter.
// Returns StopsAny if the string is empty or invalid.
func ParseStopsFilter(s string) StopsFilter {
	f := StopsFilter(s)
	if f.IsValid() {
		return f
	}
	return StopsAny
}

// SortMode defines the available result orderings.
type SortMode string

// Available sort modes.
const (
	// SortByPrice orders by total price ascending (cheapest first)
	SortByPrice SortMode = "price"

	// SortByDuration orders by summed leg duration ascending (shortest first)
	SortByDuration SortMode = "duration"

	// SortByBestValue orders by a normalized price/duration score ascending
	SortByBestValue SortMode = "bestValue"
)

// IsValid checks if the sort mode is a valid value.
func (s SortMode) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByBestValue:
		return true
	default:
		return false
	}
}

// ParseSortMode converts a string to a SortMode.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortMode(s string) SortMode {
	m := SortMode(s)
	if m.IsValid() {
		return m
	}
	return SortByPrice
}

// FilterState holds the active result filters. It is mutated only by explicit
// user filter actions and reset by "clear filters".
type FilterState struct {
	// Stops restricts offers by per-leg stop count
	Stops StopsFilter `json:"stops"`

	// Airlines is an OR-combined set of validating airline codes;
	// empty means no restriction
	Airlines []string `json:"airlines,omitempty"`

	// PriceMin and PriceMax are optional inclusive bounds on the total price
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
}

// DefaultFilters returns the unrestricted filter state.
func DefaultFilters() FilterState {
	return FilterState{Stops: StopsAny}
}

// MatchesPrice checks the offer against the inclusive price bounds.
// An absent bound is unconstrained on that side.
func (fs *FilterState) MatchesPrice(f FlightOffer) bool {
	if fs.PriceMin != nil && f.PriceTotal < *fs.PriceMin {
		return false
	}
	if fs.PriceMax != nil && f.PriceTotal > *fs.PriceMax {
		return false
	}
	return true
}

// MatchesStops checks the offer against the stops filter. Every leg must
// satisfy the criterion: a round trip with a direct outbound and a one-stop
// return matches neither "0" nor "1".
func (fs *FilterState) MatchesStops(f FlightOffer) bool {
	switch fs.Stops {
	case StopsDirect:
		return everyLeg(f, func(l FlightLeg) bool { return l.StopsCount == 0 })
	case StopsOne:
		return everyLeg(f, func(l FlightLeg) bool { return l.StopsCount == 1 })
	case StopsTwoPlus:
		return everyLeg(f, func(l FlightLeg) bool { return l.StopsCount >= 2 })
	default:
		return true
	}
}

// MatchesAirlines checks the validating airline against the selected set.
// An empty set is unconstrained.
func (fs *FilterState) MatchesAirlines(f FlightOffer) bool {
	if len(fs.Airlines) == 0 {
		return true
	}
	code := strings.ToUpper(f.ValidatingAirline)
	for _, a := range fs.Airlines {
		if strings.ToUpper(a) == code {
			return true
		}
	}
	return false
}

func everyLeg(f FlightOffer, pred func(FlightLeg) bool) bool {
	for _, l := range f.Legs {
		if !pred(l) {
			return false
		}
	}
	return true
}
