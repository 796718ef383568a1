package usecase

import (
	"context"
	"sync"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/logger"
)

// DefaultPageSize is the fixed page size used by the infinite-scroll list.
const DefaultPageSize = 10

// PagerState is the lifecycle state of the pagination controller.
type PagerState string

// Pager states.
const (
	// PagerIdle means no query has been submitted
	PagerIdle PagerState = "idle"

	// PagerLoadingFirstPage means page 1 of a fresh query is in flight
	PagerLoadingFirstPage PagerState = "loading_first_page"

	// PagerReady means at least one page has landed and more may be requested
	PagerReady PagerState = "ready"

	// PagerLoadingMore means a follow-up page is in flight
	PagerLoadingMore PagerState = "loading_more"

	// PagerFailed means the last fetch errored; the next submit clears it
	PagerFailed PagerState = "failed"
)

// Page is one server page of a search result set.
type Page struct {
	// Flights are the offers of this page, in result order
	Flights []domain.FlightOffer

	// Total is the size of the full result set
	Total int

	// HasMore reports whether pages beyond this one exist
	HasMore bool
}

// PageSource fetches one page of normalized offers for a query. Pages are
// 1-based and sliced deterministically: the same query and page always yield
// the same offers.
//
//go:generate mockgen -source=pager.go -destination=pager_mock.go -package=usecase
type PageSource interface {
	FetchPage(ctx context.Context, query domain.SearchQuery, page, pageSize int) (Page, error)
}

// Pager accumulates server pages into a growing result list, keyed by the
// submitted query. Submitting a query with a different key resets the list
// and restarts at page 1. Only one fetch per query is ever in flight; a
// LoadMore while fetching is dropped, and a response that arrives after its
// query was superseded is discarded (last-submitted-query-wins).
type Pager struct {
	source   PageSource
	pageSize int
	log      *logger.Logger

	mu       sync.Mutex
	state    PagerState
	query    domain.SearchQuery
	queryKey string
	page     int
	flights  []domain.FlightOffer
	total    int
	hasMore  bool
	err      error
	seq      uint64
	onChange func()
}

// NewPager creates a Pager over the given source.
// A pageSize of 0 or less falls back to DefaultPageSize.
func NewPager(source PageSource, pageSize int, log *logger.Logger) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pager{
		source:   source,
		pageSize: pageSize,
		log:      log,
		state:    PagerIdle,
	}
}

// SetOnChange registers a hook invoked after every state change. The
// presentation layer uses it to re-run its derivations.
func (p *Pager) SetOnChange(fn func()) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// Submit activates a query. A query whose key differs from the active one
// resets the accumulated list and cursor and fetches page 1. Resubmitting the
// active key is a no-op unless the pager is failed, in which case it retries.
func (p *Pager) Submit(ctx context.Context, query domain.SearchQuery) {
	query.SetDefaults()
	key := query.Key()

	p.mu.Lock()
	if key == p.queryKey && p.state != PagerIdle && p.state != PagerFailed {
		p.mu.Unlock()
		return
	}

	p.query = query
	p.queryKey = key
	p.page = 1
	p.flights = nil
	p.total = 0
	p.hasMore = false
	p.err = nil
	p.state = PagerLoadingFirstPage
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	p.notify()
	go p.fetch(ctx, query, 1, seq)
}

// LoadMore requests the next page. It is a no-op unless the pager is ready,
// more results exist, and no fetch is in flight.
func (p *Pager) LoadMore(ctx context.Context) {
	p.mu.Lock()
	if p.state != PagerReady || !p.hasMore {
		p.mu.Unlock()
		return
	}

	p.page++
	p.state = PagerLoadingMore
	p.seq++
	query, page, seq := p.query, p.page, p.seq
	p.mu.Unlock()

	p.notify()
	go p.fetch(ctx, query, page, seq)
}

// Reset returns the pager to idle, dropping all accumulated results.
func (p *Pager) Reset() {
	p.mu.Lock()
	p.state = PagerIdle
	p.query = domain.SearchQuery{}
	p.queryKey = ""
	p.page = 0
	p.flights = nil
	p.total = 0
	p.hasMore = false
	p.err = nil
	p.seq++ // invalidates any in-flight fetch
	p.mu.Unlock()

	p.notify()
}

// fetch runs one page request and applies the result unless it is stale.
func (p *Pager) fetch(ctx context.Context, query domain.SearchQuery, page int, seq uint64) {
	result, err := p.source.FetchPage(ctx, query, page, p.pageSize)

	p.mu.Lock()
	if seq != p.seq {
		// A newer submit or reset superseded this fetch.
		p.mu.Unlock()
		p.log.Debug().
			Str("query_key", query.Key()).
			Int("page", page).
			Msg("discarding stale page response")
		return
	}

	if err != nil {
		p.state = PagerFailed
		p.err = err
		p.mu.Unlock()
		p.log.Error().Err(err).
			Str("query_key", query.Key()).
			Int("page", page).
			Msg("page fetch failed")
		p.notify()
		return
	}

	if page == 1 {
		p.flights = result.Flights
	} else {
		p.flights = append(p.flights, result.Flights...)
	}
	p.total = result.Total
	p.hasMore = result.HasMore
	p.state = PagerReady
	p.mu.Unlock()

	p.notify()
}

func (p *Pager) notify() {
	p.mu.Lock()
	fn := p.onChange
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// State returns the current lifecycle state.
func (p *Pager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Flights returns a copy of the accumulated result list.
func (p *Pager) Flights() []domain.FlightOffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.FlightOffer, len(p.flights))
	copy(out, p.flights)
	return out
}

// Total returns the size of the full result set as last reported.
func (p *Pager) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// HasMore reports whether further pages exist.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page returns the current 1-based page cursor.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Err returns the error of the last failed fetch, if any.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
