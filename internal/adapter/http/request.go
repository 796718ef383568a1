// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

// SearchRequest is the parsed and validated query-string form of a flight
// search. Filters, sort, and pagination are optional; when no page is given
// the full derived list is returned in one response.
type SearchRequest struct {
	Query    domain.SearchQuery
	Filters  domain.FilterState
	Sort     domain.SortMode
	Page     int
	PageSize int
}

// Paginated reports whether the caller asked for an explicit page.
func (r *SearchRequest) Paginated() bool {
	return r.Page > 0
}

// ParseSearchRequest reads the search parameters from the query string.
// Route and date problems return a wrapped domain.ErrInvalidRequest naming
// the offending parameter; unknown stops and sort values silently fall back
// to their defaults.
func ParseSearchRequest(c echo.Context) (SearchRequest, error) {
	query := domain.SearchQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(c.QueryParam("origin"))),
		Destination: strings.ToUpper(strings.TrimSpace(c.QueryParam("destination"))),
		DepartDate:  strings.TrimSpace(c.QueryParam("departDate")),
		ReturnDate:  strings.TrimSpace(c.QueryParam("returnDate")),
	}

	if v := c.QueryParam("travelers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return SearchRequest{}, fmt.Errorf("%w: travelers must be a number, got %q", domain.ErrInvalidRequest, v)
		}
		query.Travelers = n
	}

	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return SearchRequest{}, err
	}

	filters := domain.DefaultFilters()
	filters.Stops = domain.ParseStopsFilter(c.QueryParam("stops"))

	if v := c.QueryParam("airlines"); v != "" {
		for _, code := range strings.Split(v, ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code != "" {
				filters.Airlines = append(filters.Airlines, code)
			}
		}
	}

	var err error
	if filters.PriceMin, err = parsePriceParam(c, "priceMin"); err != nil {
		return SearchRequest{}, err
	}
	if filters.PriceMax, err = parsePriceParam(c, "priceMax"); err != nil {
		return SearchRequest{}, err
	}

	req := SearchRequest{
		Query:    query,
		Filters:  filters,
		Sort:     domain.ParseSortMode(c.QueryParam("sort")),
		PageSize: usecase.DefaultPageSize,
	}

	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return SearchRequest{}, fmt.Errorf("%w: page must be a positive number, got %q", domain.ErrInvalidRequest, v)
		}
		req.Page = n
	}
	if v := c.QueryParam("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return SearchRequest{}, fmt.Errorf("%w: pageSize must be a positive number, got %q", domain.ErrInvalidRequest, v)
		}
		req.PageSize = n
	}

	return req, nil
}

func parsePriceParam(c echo.Context, name string) (*float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidRequest, name, v)
	}
	return &f, nil
}
