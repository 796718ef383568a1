package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/debounce"
	"github.com/skyroute/skyroute/internal/infrastructure/timeutil"
)

// Snapshot is the persisted slice of search state: the last search criteria,
// filters, sort, and the dates known to have returned no flights. It is what
// the presentation layer stores between sessions.
type Snapshot struct {
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	DepartDate    string             `json:"departDate"`
	ReturnDate    string             `json:"returnDate,omitempty"`
	Travelers     int                `json:"travelers,omitempty"`
	Filters       domain.FilterState `json:"filters"`
	Sort          domain.SortMode    `json:"sort"`
	NoFlightDates []string           `json:"noFlightDates,omitempty"`
}

// SnapshotStore is the persistence boundary for Snapshot. The core never
// depends on where snapshots live; a nil store disables persistence.
type SnapshotStore interface {
	// Load returns the stored snapshot, if one exists.
	Load() (Snapshot, bool)

	// Save stores the snapshot, replacing any previous one.
	Save(Snapshot)
}

// Store is the single source of truth for user-entered search criteria,
// active filters, sort choice, and the submitted query. All derivations
// consume its state; only explicit user actions mutate it.
type Store struct {
	mu        sync.Mutex
	clock     timeutil.Clock
	snapshots SnapshotStore

	origin        string
	destination   string
	departDate    string
	returnDate    string
	travelers     int
	filters       domain.FilterState
	sort          domain.SortMode
	submitted     *domain.SearchQuery
	noFlightDates map[string]bool

	autoSearch *debounce.Debouncer
	onSubmit   func(domain.SearchQuery)
}

// NewStore creates a Store, restoring the given snapshot store's state when
// its departure date is today or later. Stale snapshots are ignored so the
// form never opens on a past date.
func NewStore(snapshots SnapshotStore, clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	s := &Store{
		clock:         clock,
		snapshots:     snapshots,
		travelers:     domain.MinTravelers,
		filters:       domain.DefaultFilters(),
		sort:          domain.SortByPrice,
		noFlightDates: make(map[string]bool),
	}
	s.departDate = s.today()

	if snapshots != nil {
		if snap, ok := snapshots.Load(); ok && snap.DepartDate >= s.today() {
			s.restore(snap)
		}
	}

	return s
}

func (s *Store) today() string {
	return s.clock.Now().Format("2006-01-02")
}

func (s *Store) restore(snap Snapshot) {
	s.origin = snap.Origin
	s.destination = snap.Destination
	s.departDate = snap.DepartDate
	s.returnDate = snap.ReturnDate
	if snap.Travelers >= domain.MinTravelers && snap.Travelers <= domain.MaxTravelers {
		s.travelers = snap.Travelers
	}
	if snap.Filters.Stops.IsValid() {
		s.filters = snap.Filters
	}
	if snap.Sort.IsValid() {
		s.sort = snap.Sort
	}
	for _, d := range snap.NoFlightDates {
		s.noFlightDates[d] = true
	}
}

// EnableAutoSearch submits the current criteria automatically once edits go
// quiet for the given window. Filter and sort changes do not trigger it.
func (s *Store) EnableAutoSearch(window time.Duration, submit func(domain.SearchQuery)) {
	s.mu.Lock()
	s.autoSearch = debounce.New(window)
	s.onSubmit = submit
	s.mu.Unlock()
}

// Close cancels any pending auto-search timer.
func (s *Store) Close() {
	s.mu.Lock()
	d := s.autoSearch
	s.mu.Unlock()
	if d != nil {
		d.Stop()
	}
}

// SetOrigin updates the origin field, upper-casing the code.
func (s *Store) SetOrigin(code string) {
	s.mu.Lock()
	s.origin = strings.ToUpper(strings.TrimSpace(code))
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SetDestination updates the destination field, upper-casing the code.
func (s *Store) SetDestination(code string) {
	s.mu.Lock()
	s.destination = strings.ToUpper(strings.TrimSpace(code))
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SwapRoute exchanges origin and destination. When a query has already been
// submitted its route is swapped too, so the results header stays in sync
// with the form.
func (s *Store) SwapRoute() {
	s.mu.Lock()
	s.origin, s.destination = s.destination, s.origin
	if s.submitted != nil {
		q := *s.submitted
		q.Origin, q.Destination = q.Destination, q.Origin
		s.submitted = &q
	}
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SetDepartDate updates the outbound date (YYYY-MM-DD).
func (s *Store) SetDepartDate(date string) {
	s.mu.Lock()
	s.departDate = date
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SetReturnDate updates the return date; empty switches back to one-way.
func (s *Store) SetReturnDate(date string) {
	s.mu.Lock()
	s.returnDate = date
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SetTravelers updates the traveler count, clamped to the accepted bounds.
func (s *Store) SetTravelers(n int) {
	if n < domain.MinTravelers {
		n = domain.MinTravelers
	}
	if n > domain.MaxTravelers {
		n = domain.MaxTravelers
	}
	s.mu.Lock()
	s.travelers = n
	s.mu.Unlock()
	s.afterCriteriaEdit()
}

// SetStops updates the stops filter.
func (s *Store) SetStops(f domain.StopsFilter) {
	s.mu.Lock()
	s.filters.Stops = f
	s.mu.Unlock()
	s.persist()
}

// ToggleAirline adds the airline code to the filter set, or removes it when
// already present.
func (s *Store) ToggleAirline(code string) {
	code = strings.ToUpper(code)
	s.mu.Lock()
	found := false
	for i, a := range s.filters.Airlines {
		if a == code {
			s.filters.Airlines = append(s.filters.Airlines[:i], s.filters.Airlines[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.filters.Airlines = append(s.filters.Airlines, code)
	}
	s.mu.Unlock()
	s.persist()
}

// SetPriceRange updates the inclusive price bounds; nil clears a bound.
func (s *Store) SetPriceRange(min, max *float64) {
	s.mu.Lock()
	s.filters.PriceMin = min
	s.filters.PriceMax = max
	s.mu.Unlock()
	s.persist()
}

// ClearFilters resets all filters to their defaults.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = domain.DefaultFilters()
	s.mu.Unlock()
	s.persist()
}

// SetSort updates the sort mode.
func (s *Store) SetSort(mode domain.SortMode) {
	s.mu.Lock()
	s.sort = mode
	s.mu.Unlock()
	s.persist()
}

// Submit freezes the current criteria into the submitted query and returns
// it. Incomplete criteria (missing route or date) leave the submitted query
// untouched and return false.
func (s *Store) Submit() (domain.SearchQuery, bool) {
	s.mu.Lock()
	if s.origin == "" || s.destination == "" || s.departDate == "" {
		s.mu.Unlock()
		return domain.SearchQuery{}, false
	}

	q := domain.SearchQuery{
		Origin:      s.origin,
		Destination: s.destination,
		DepartDate:  s.departDate,
		ReturnDate:  s.returnDate,
		Travelers:   s.travelers,
	}
	q.SetDefaults()
	s.submitted = &q
	s.mu.Unlock()

	s.persist()
	return q, true
}

// ClearSubmitted drops the submitted query, returning to the idle form.
func (s *Store) ClearSubmitted() {
	s.mu.Lock()
	s.submitted = nil
	s.mu.Unlock()
}

// Submitted returns the active submitted query, if any.
func (s *Store) Submitted() (domain.SearchQuery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted == nil {
		return domain.SearchQuery{}, false
	}
	return *s.submitted, true
}

// Filters returns the active filter state.
func (s *Store) Filters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs := s.filters
	fs.Airlines = append([]string(nil), s.filters.Airlines...)
	return fs
}

// Sort returns the active sort mode.
func (s *Store) Sort() domain.SortMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// Criteria returns the current form fields as an unvalidated query.
func (s *Store) Criteria() domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SearchQuery{
		Origin:      s.origin,
		Destination: s.destination,
		DepartDate:  s.departDate,
		ReturnDate:  s.returnDate,
		Travelers:   s.travelers,
	}
}

// MarkNoFlights records that a departure date returned an empty result set,
// so the date picker can flag it.
func (s *Store) MarkNoFlights(date string) {
	s.mu.Lock()
	s.noFlightDates[date] = true
	s.mu.Unlock()
	s.persist()
}

// HasNoFlights reports whether a date is known to have no flights.
func (s *Store) HasNoFlights(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noFlightDates[date]
}

// afterCriteriaEdit persists the new state and restarts the auto-search
// timer when enabled.
func (s *Store) afterCriteriaEdit() {
	s.persist()

	s.mu.Lock()
	d := s.autoSearch
	submit := s.onSubmit
	s.mu.Unlock()
	if d == nil || submit == nil {
		return
	}

	d.Call(func() {
		q, ok := s.Submit()
		if ok && q.Validate() == nil {
			submit(q)
		}
	})
}

// persist writes the current state through the snapshot boundary.
func (s *Store) persist() {
	s.mu.Lock()
	store := s.snapshots
	if store == nil {
		s.mu.Unlock()
		return
	}

	dates := make([]string, 0, len(s.noFlightDates))
	for d := range s.noFlightDates {
		dates = append(dates, d)
	}

	snap := Snapshot{
		Origin:        s.origin,
		Destination:   s.destination,
		DepartDate:    s.departDate,
		ReturnDate:    s.returnDate,
		Travelers:     s.travelers,
		Filters:       s.filters,
		Sort:          s.sort,
		NoFlightDates: dates,
	}
	s.mu.Unlock()

	store.Save(snap)
}
