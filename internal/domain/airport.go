package domain

import "strings"

// Airport is one autocomplete option from the location lookup.
type Airport struct {
	// ID is the upstream location identifier
	ID string `json:"id"`

	// IATACode is the 3-letter airport or city code
	IATACode string `json:"iataCode"`

	// Name is the airport or city name
	Name string `json:"name"`

	// CityName is the city the airport serves
	CityName string `json:"cityName,omitempty"`

	// CountryCode is the ISO country code
	CountryCode string `json:"countryCode,omitempty"`
}

// Label renders the option as shown in the autocomplete dropdown,
// e.g. "LCA — Larnaca, CY".
func (a *Airport) Label() string {
	parts := make([]string, 0, 2)
	name := a.CityName
	if name == "" {
		name = a.Name
	}
	if name != "" {
		parts = append(parts, name)
	}
	if a.CountryCode != "" {
		parts = append(parts, a.CountryCode)
	}
	return a.IATACode + " — " + strings.Join(parts, ", ")
}
