package amadeus

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/cache"
	"github.com/skyroute/skyroute/internal/infrastructure/logger"
	"github.com/skyroute/skyroute/internal/usecase"
)

const (
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"

	// maxOfferResults caps one upstream search; pagination slices this set.
	maxOfferResults = 50

	// searchCacheTTL is how long a full result set is reused before a fresh
	// upstream search.
	searchCacheTTL = 30 * time.Second

	// minKeywordLength is the shortest cleaned keyword worth an upstream
	// location lookup.
	minKeywordLength = 2

	maxLocationResults = 10
)

var (
	// unicodeDashes maps the en/em/horizontal-bar dashes users paste from
	// rich text onto a plain hyphen.
	unicodeDashes = strings.NewReplacer("–", "-", "—", "-", "―", "-")

	// keywordCleaner strips everything but word characters, spaces, and
	// hyphens from an autocomplete keyword before it is sent upstream.
	keywordCleaner = regexp.MustCompile(`[^\w\s-]`)

	spaceCollapser = regexp.MustCompile(`\s+`)
)

// cleanKeyword normalizes an autocomplete keyword for the locations API.
func cleanKeyword(keyword string) string {
	cleaned := unicodeDashes.Replace(keyword)
	cleaned = keywordCleaner.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	return spaceCollapser.ReplaceAllString(cleaned, " ")
}

// Source serves flight offers and airport lookups from the Amadeus APIs.
// Full result sets are cached per query key, so paging through one search hits
// the upstream once.
type Source struct {
	client *Client
	cache  *cache.TTL[[]domain.FlightOffer]
	log    *logger.Logger
}

// NewSource creates a Source over the given client.
func NewSource(client *Client, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	return &Source{
		client: client,
		cache:  cache.New[[]domain.FlightOffer](searchCacheTTL),
		log:    log,
	}
}

// SearchOffers returns the full normalized result set for a query, from cache
// when a recent identical search exists.
func (s *Source) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	query.SetDefaults()
	key := query.Key()

	if offers, ok := s.cache.Get(key); ok {
		s.log.Debug().Str("query_key", key).Int("offers", len(offers)).Msg("serving cached search")
		return offers, nil
	}

	params := url.Values{
		"originLocationCode":      {query.Origin},
		"destinationLocationCode": {query.Destination},
		"departureDate":           {query.DepartDate},
		"adults":                  {strconv.Itoa(query.Travelers)},
		"max":                     {strconv.Itoa(maxOfferResults)},
		"currencyCode":            {defaultCurrency},
	}
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}

	var resp offersResponse
	if err := s.client.getJSON(ctx, offersPath, params, &resp); err != nil {
		return nil, err
	}

	offers := normalizeOffers(resp.Data)
	s.cache.Set(key, offers)

	s.log.Info().
		Str("query_key", key).
		Int("offers", len(offers)).
		Msg("upstream search completed")

	return offers, nil
}

// SearchAirports looks up airports matching an autocomplete keyword. Keywords
// shorter than two characters after cleaning return an empty result without
// touching the upstream.
func (s *Source) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	cleaned := cleanKeyword(keyword)
	if len(cleaned) < minKeywordLength {
		return []domain.Airport{}, nil
	}

	params := url.Values{
		"subType":     {"AIRPORT,CITY"},
		"keyword":     {cleaned},
		"page[limit]": {strconv.Itoa(maxLocationResults)},
		"view":        {"LIGHT"},
	}

	var resp locationsResponse
	if err := s.client.getJSON(ctx, locationsPath, params, &resp); err != nil {
		return nil, err
	}

	return normalizeLocations(resp.Data), nil
}

// FetchPage implements usecase.PageSource by slicing the cached full result
// set. Slicing the same set on every call keeps pages deterministic for the
// lifetime of a query.
func (s *Source) FetchPage(ctx context.Context, query domain.SearchQuery, page, pageSize int) (usecase.Page, error) {
	offers, err := s.SearchOffers(ctx, query)
	if err != nil {
		return usecase.Page{}, err
	}

	total := len(offers)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	flights := make([]domain.FlightOffer, end-start)
	copy(flights, offers[start:end])

	return usecase.Page{
		Flights: flights,
		Total:   total,
		HasMore: end < total,
	}, nil
}

// Ensure Source satisfies the pagination contract at compile time.
var _ usecase.PageSource = (*Source)(nil)
