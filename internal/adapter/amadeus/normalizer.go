package amadeus

import (
	"strconv"
	"strings"

	"github.com/skyroute/skyroute/internal/domain"
)

// defaultCurrency backfills offers whose price block carries no currency.
const defaultCurrency = "EUR"

// normalizeOffers converts raw offers to domain offers. Normalization never
// fails: missing or malformed fields fall back to zero values so one bad
// record cannot take down a whole response.
func normalizeOffers(raw []RawOffer) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(raw))
	for _, r := range raw {
		result = append(result, normalizeOffer(r))
	}
	return result
}

// normalizeOffer converts a single raw offer. Only the first two itineraries
// are kept: outbound and, when present, return.
func normalizeOffer(r RawOffer) domain.FlightOffer {
	itineraries := r.Itineraries
	if len(itineraries) > 2 {
		itineraries = itineraries[:2]
	}

	legs := make([]domain.FlightLeg, 0, len(itineraries))
	for _, it := range itineraries {
		legs = append(legs, normalizeLeg(it))
	}

	return domain.FlightOffer{
		ID:                r.ID,
		PriceTotal:        parsePrice(r.Price.Total),
		Currency:          normalizeCurrency(r.Price.Currency),
		ValidatingAirline: validatingAirline(r),
		Legs:              legs,
	}
}

func normalizeLeg(it rawItinerary) domain.FlightLeg {
	segments := make([]domain.Segment, 0, len(it.Segments))
	for _, s := range it.Segments {
		segments = append(segments, domain.Segment{
			From:         s.Departure.IATACode,
			To:           s.Arrival.IATACode,
			DepartAt:     s.Departure.At,
			ArriveAt:     s.Arrival.At,
			Carrier:      s.CarrierCode,
			FlightNumber: s.Number,
		})
	}

	stops := len(segments) - 1
	if stops < 0 {
		stops = 0
	}

	leg := domain.FlightLeg{
		StopsCount:      stops,
		DurationMinutes: domain.ParseDurationMinutes(it.Duration),
		Segments:        segments,
	}
	if len(segments) > 0 {
		leg.DepartureDateTime = segments[0].DepartAt
		leg.ArrivalDateTime = segments[len(segments)-1].ArriveAt
	}
	return leg
}

// parsePrice converts the upstream's string-encoded price; malformed input
// yields 0.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func normalizeCurrency(c string) string {
	if c == "" {
		return defaultCurrency
	}
	return c
}

// validatingAirline picks the first validating airline code, falling back to
// the first segment's carrier and finally to the placeholder.
func validatingAirline(r RawOffer) string {
	if len(r.ValidatingAirlineCodes) > 0 && r.ValidatingAirlineCodes[0] != "" {
		return r.ValidatingAirlineCodes[0]
	}
	for _, it := range r.Itineraries {
		if len(it.Segments) > 0 && it.Segments[0].CarrierCode != "" {
			return it.Segments[0].CarrierCode
		}
	}
	return domain.PlaceholderCarrier
}

// normalizeLocations converts raw locations to airports, dropping entries
// without an IATA code and deduplicating by code.
func normalizeLocations(raw []rawLocation) []domain.Airport {
	seen := make(map[string]bool, len(raw))
	result := make([]domain.Airport, 0, len(raw))

	for _, l := range raw {
		code := strings.ToUpper(l.IATACode)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		result = append(result, domain.Airport{
			ID:          l.ID,
			IATACode:    code,
			Name:        l.Name,
			CityName:    l.Address.CityName,
			CountryCode: l.Address.CountryCode,
		})
	}

	return result
}
