package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/timeutil"
	"github.com/skyroute/skyroute/internal/usecase"
)

type memorySnapshots struct {
	mu    sync.Mutex
	snap  usecase.Snapshot
	valid bool
}

func (m *memorySnapshots) Load() (usecase.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, m.valid
}

func (m *memorySnapshots) Save(s usecase.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s
	m.valid = true
}

func testClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
}

func TestStoreDefaults(t *testing.T) {
	s := usecase.NewStore(nil, testClock())

	c := s.Criteria()
	assert.Empty(t, c.Origin)
	assert.Empty(t, c.Destination)
	assert.Equal(t, "2026-09-01", c.DepartDate, "depart date defaults to today")
	assert.Equal(t, 1, c.Travelers)
	assert.Equal(t, domain.DefaultFilters(), s.Filters())
	assert.Equal(t, domain.SortByPrice, s.Sort())

	_, ok := s.Submitted()
	assert.False(t, ok)
}

func TestStoreSettersUppercaseCodes(t *testing.T) {
	s := usecase.NewStore(nil, testClock())

	s.SetOrigin(" evn ")
	s.SetDestination("lca")

	c := s.Criteria()
	assert.Equal(t, "EVN", c.Origin)
	assert.Equal(t, "LCA", c.Destination)
}

func TestStoreSwapRoute(t *testing.T) {
	s := usecase.NewStore(nil, testClock())
	s.SetOrigin("EVN")
	s.SetDestination("LCA")
	s.SetDepartDate("2026-09-15")

	_, ok := s.Submit()
	require.True(t, ok)

	s.SwapRoute()

	c := s.Criteria()
	assert.Equal(t, "LCA", c.Origin)
	assert.Equal(t, "EVN", c.Destination)

	q, ok := s.Submitted()
	require.True(t, ok)
	assert.Equal(t, "LCA", q.Origin, "submitted query swaps with the form")
	assert.Equal(t, "EVN", q.Destination)
}

func TestStoreTravelersClamped(t *testing.T) {
	s := usecase.NewStore(nil, testClock())

	s.SetTravelers(0)
	assert.Equal(t, domain.MinTravelers, s.Criteria().Travelers)

	s.SetTravelers(99)
	assert.Equal(t, domain.MaxTravelers, s.Criteria().Travelers)

	s.SetTravelers(4)
	assert.Equal(t, 4, s.Criteria().Travelers)
}

func TestStoreToggleAirline(t *testing.T) {
	s := usecase.NewStore(nil, testClock())

	s.ToggleAirline("ba")
	assert.Equal(t, []string{"BA"}, s.Filters().Airlines)

	s.ToggleAirline("LH")
	assert.Equal(t, []string{"BA", "LH"}, s.Filters().Airlines)

	s.ToggleAirline("BA")
	assert.Equal(t, []string{"LH"}, s.Filters().Airlines)
}

func TestStoreClearFilters(t *testing.T) {
	s := usecase.NewStore(nil, testClock())
	s.SetStops(domain.StopsDirect)
	s.ToggleAirline("BA")
	s.SetPriceRange(float64Ptr(100), float64Ptr(500))

	s.ClearFilters()

	assert.Equal(t, domain.DefaultFilters(), s.Filters())
}

func TestStoreSubmitRequiresRouteAndDate(t *testing.T) {
	s := usecase.NewStore(nil, testClock())

	_, ok := s.Submit()
	assert.False(t, ok, "empty form must not submit")

	s.SetOrigin("EVN")
	s.SetDestination("LCA")
	s.SetDepartDate("2026-09-15")
	s.SetTravelers(2)

	q, ok := s.Submit()
	require.True(t, ok)
	assert.Equal(t, domain.SearchQuery{
		Origin:      "EVN",
		Destination: "LCA",
		DepartDate:  "2026-09-15",
		Travelers:   2,
	}, q)

	s.ClearSubmitted()
	_, ok = s.Submitted()
	assert.False(t, ok)
}

func TestStoreSnapshotRoundTrip(t *testing.T) {
	snaps := &memorySnapshots{}

	s := usecase.NewStore(snaps, testClock())
	s.SetOrigin("EVN")
	s.SetDestination("LCA")
	s.SetDepartDate("2026-09-15")
	s.SetReturnDate("2026-09-20")
	s.SetTravelers(2)
	s.SetStops(domain.StopsDirect)
	s.ToggleAirline("BA")
	s.SetSort(domain.SortByDuration)
	s.MarkNoFlights("2026-09-14")

	restored := usecase.NewStore(snaps, testClock())

	c := restored.Criteria()
	assert.Equal(t, "EVN", c.Origin)
	assert.Equal(t, "LCA", c.Destination)
	assert.Equal(t, "2026-09-15", c.DepartDate)
	assert.Equal(t, "2026-09-20", c.ReturnDate)
	assert.Equal(t, 2, c.Travelers)
	assert.Equal(t, domain.StopsDirect, restored.Filters().Stops)
	assert.Equal(t, []string{"BA"}, restored.Filters().Airlines)
	assert.Equal(t, domain.SortByDuration, restored.Sort())
	assert.True(t, restored.HasNoFlights("2026-09-14"))
}

func TestStoreIgnoresStaleSnapshot(t *testing.T) {
	snaps := &memorySnapshots{}
	snaps.Save(usecase.Snapshot{
		Origin:     "EVN",
		DepartDate: "2026-08-01",
		Filters:    domain.DefaultFilters(),
		Sort:       domain.SortByPrice,
	})

	s := usecase.NewStore(snaps, testClock())

	c := s.Criteria()
	assert.Empty(t, c.Origin, "past departure date must not be restored")
	assert.Equal(t, "2026-09-01", c.DepartDate)
}

func TestStoreRestoresTodaySnapshot(t *testing.T) {
	snaps := &memorySnapshots{}
	snaps.Save(usecase.Snapshot{
		Origin:     "EVN",
		DepartDate: "2026-09-01",
		Filters:    domain.DefaultFilters(),
		Sort:       domain.SortByPrice,
	})

	s := usecase.NewStore(snaps, testClock())

	assert.Equal(t, "EVN", s.Criteria().Origin, "today's date is still valid")
}

func TestStoreAutoSearch(t *testing.T) {
	s := usecase.NewStore(nil, testClock())
	defer s.Close()

	submitted := make(chan domain.SearchQuery, 1)
	s.EnableAutoSearch(20*time.Millisecond, func(q domain.SearchQuery) {
		submitted <- q
	})

	s.SetOrigin("EVN")
	s.SetDestination("LCA")
	s.SetDepartDate("2026-09-15")

	select {
	case q := <-submitted:
		assert.Equal(t, "EVN", q.Origin)
		assert.Equal(t, "LCA", q.Destination)
	case <-time.After(2 * time.Second):
		t.Fatal("auto-search did not fire")
	}

	assert.Len(t, submitted, 0, "the edit burst coalesces into one submit")
}

func TestStoreAutoSearchSkipsIncompleteCriteria(t *testing.T) {
	s := usecase.NewStore(nil, testClock())
	defer s.Close()

	fired := make(chan struct{}, 1)
	s.EnableAutoSearch(10*time.Millisecond, func(domain.SearchQuery) {
		fired <- struct{}{}
	})

	s.SetOrigin("EVN") // destination still missing

	select {
	case <-fired:
		t.Fatal("incomplete criteria must not auto-submit")
	case <-time.After(100 * time.Millisecond):
	}
}
