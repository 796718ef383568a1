package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/skyroute/internal/adapter/http/response"
	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/logger"
	"github.com/skyroute/skyroute/internal/usecase"
)

// Provider is the upstream boundary the handlers depend on. Both the live
// Amadeus source and the mock source satisfy it.
type Provider interface {
	// SearchOffers returns the full normalized result set for a query.
	SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error)

	// SearchAirports looks up airports matching an autocomplete keyword.
	SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error)
}

// Handler handles HTTP requests for the flight search endpoints.
type Handler struct {
	provider Provider
	mock     bool
	log      *logger.Logger
}

// NewHandler creates a Handler over the given provider. mock is reported in
// the health payload so the frontend can surface mock deployments.
func NewHandler(provider Provider, mock bool, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		provider: provider,
		mock:     mock,
		log:      log,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Description Reports service liveness and whether mock mode is active
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.OK(c, &HealthResponse{OK: true, Mock: h.mock})
}

// Airports handles GET /api/airports
//
// @Summary Airport autocomplete
// @Description Looks up airports matching a keyword
// @Tags airports
// @Produce json
// @Param q query string true "Search keyword (min 2 characters)"
// @Success 200 {object} response.DataEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /api/airports [get]
func (h *Handler) Airports(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("q"))
	if keyword == "" {
		return response.BadRequest(c, response.MsgMissingKeyword)
	}

	airports, err := h.provider.SearchAirports(c.Request().Context(), keyword)
	if err != nil {
		return h.handleError(c, err, response.MsgAirportsFailed)
	}

	options := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		options = append(options, AirportDTO{Airport: a, Label: a.Label()})
	}

	return response.Data(c, options)
}

// SearchFlights handles GET /api/flights/search
//
// @Summary Search flights
// @Description Searches flight offers for a route and date, with optional filtering, sorting, and pagination
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param travelers query int false "Number of travelers (1-30)"
// @Param stops query string false "Stops filter: any, 0, 1, 2+"
// @Param airlines query string false "Comma-separated validating airline codes"
// @Param priceMin query number false "Inclusive minimum total price"
// @Param priceMax query number false "Inclusive maximum total price"
// @Param sort query string false "Sort mode: price, duration, bestValue"
// @Param page query int false "1-based page; omit to return everything"
// @Param pageSize query int false "Page size (default 10)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 429 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /api/flights/search [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	req, err := ParseSearchRequest(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	offers, err := h.provider.SearchOffers(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err, response.MsgSearchFailed)
	}

	filtered := usecase.ApplyFilters(offers, req.Filters)
	sorted := usecase.SortOffers(filtered, req.Sort)

	page, pageData, hasMore := paginate(sorted, &req)

	data := make([]OfferDTO, 0, len(pageData))
	for _, offer := range pageData {
		data = append(data, OfferDTO{
			FlightOffer: offer,
			Badges:      usecase.Badges(offer, sorted),
		})
	}

	return response.OK(c, &SearchResponse{
		Data:        data,
		Total:       len(sorted),
		HasMore:     hasMore,
		Page:        page,
		Airlines:    usecase.AvailableAirlines(offers, req.Filters),
		PriceBounds: usecase.PriceBounds(offers),
		Chart:       usecase.ChartSeries(filtered),
	})
}

// paginate slices the derived list per the request. An unpaginated request
// returns the whole list as page 1.
func paginate(sorted []domain.FlightOffer, req *SearchRequest) (page int, data []domain.FlightOffer, hasMore bool) {
	if !req.Paginated() {
		return 1, sorted, false
	}

	total := len(sorted)
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return req.Page, sorted[start:end], end < total
}

// handleError maps provider errors to HTTP responses. Validation detail
// surfaced by the upstream flows through as a 400; everything unexpected
// collapses to a generic 500 with the endpoint's failure message.
func (h *Handler) handleError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return response.TooManyRequests(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrMissingCredentials):
		h.log.Error().Msg("upstream credentials are not configured")
		return response.InternalError(c, response.MsgMissingCredentials)
	default:
		h.log.Error().Err(err).Str("request_id", c.Response().Header().Get("X-Request-ID")).Msg("provider request failed")
		return response.InternalError(c, fallback)
	}
}
