package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Traveler bounds accepted by the search form.
const (
	MinTravelers = 1
	MaxTravelers = 30
)

// SearchQuery is a submitted flight search. There is at most one active
// submitted query at a time; a new submission replaces it.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport (e.g. "EVN")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g. "LCA")
	Destination string `json:"destination"`

	// DepartDate is the outbound date in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format;
	// empty means one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Travelers is the number of adult travelers (default 1)
	Travelers int `json:"travelers,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the query. It returns a wrapped ErrInvalidRequest naming
// the offending field when validation fails.
func (q *SearchQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}

	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}

	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if q.DepartDate == "" {
		return fmt.Errorf("%w: departDate is required", ErrInvalidRequest)
	}
	if err := validateDate("departDate", q.DepartDate); err != nil {
		return err
	}

	if q.ReturnDate != "" {
		if err := validateDate("returnDate", q.ReturnDate); err != nil {
			return err
		}
		if q.ReturnDate < q.DepartDate {
			return fmt.Errorf("%w: returnDate cannot be before departDate", ErrInvalidRequest)
		}
	}

	if q.Travelers < MinTravelers {
		return fmt.Errorf("%w: travelers must be at least %d", ErrInvalidRequest, MinTravelers)
	}
	if q.Travelers > MaxTravelers {
		return fmt.Errorf("%w: travelers cannot exceed %d", ErrInvalidRequest, MaxTravelers)
	}

	return nil
}

func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	if q.Travelers == 0 {
		q.Travelers = MinTravelers
	}
}

// IsZero reports whether no query has been populated.
func (q *SearchQuery) IsZero() bool {
	return q.Origin == "" && q.Destination == "" && q.DepartDate == ""
}

// Key returns the identity of this query for pagination and caching.
// Two queries with the same key share a result set.
func (q *SearchQuery) Key() string {
	return strings.Join([]string{
		q.Origin,
		q.Destination,
		q.DepartDate,
		q.ReturnDate,
		strconv.Itoa(q.Travelers),
	}, "-")
}
