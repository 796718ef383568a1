// Package mock provides test doubles for the flight search pipeline.
// These mocks are designed for tests that need configurable behavior
// (delays, errors, gated completion order, specific result sets).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/usecase"
)

// Source is a configurable implementation of usecase.PageSource backed by a
// fixed offer list. Pages are sliced deterministically from that list, so the
// same query and page always yield the same offers. Behavior is configured
// with the builder pattern methods.
type Source struct {
	mu        sync.Mutex
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	gate      chan struct{}
	callCount int
	pages     []int
}

// NewSource creates a mock source serving the given offers.
func NewSource(offers []domain.FlightOffer) *Source {
	return &Source{offers: offers}
}

// WithError configures the source to fail every fetch with err.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// WithGate blocks every fetch until the gate channel is closed or receives.
// Tests use it to control the order in which concurrent fetches complete.
func (s *Source) WithGate(gate chan struct{}) *Source {
	s.gate = gate
	return s
}

// FetchPage implements usecase.PageSource.
func (s *Source) FetchPage(ctx context.Context, query domain.SearchQuery, page, pageSize int) (usecase.Page, error) {
	s.mu.Lock()
	s.callCount++
	s.pages = append(s.pages, page)
	delay, gate, err := s.delay, s.gate, s.err
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return usecase.Page{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	if gate != nil {
		select {
		case <-ctx.Done():
			return usecase.Page{}, ctx.Err()
		case <-gate:
		}
	}

	if err != nil {
		return usecase.Page{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.offers)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	flights := make([]domain.FlightOffer, end-start)
	copy(flights, s.offers[start:end])

	return usecase.Page{
		Flights: flights,
		Total:   total,
		HasMore: end < total,
	}, nil
}

// CallCount returns how many times FetchPage was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Pages returns the page numbers requested so far, in call order.
func (s *Source) Pages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.pages...)
}

// Ensure Source implements usecase.PageSource at compile time.
var _ usecase.PageSource = (*Source)(nil)

// SampleOffers returns count one-way offers with distinct IDs, ascending
// prices, and realistic field values.
func SampleOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)

	for i := 0; i < count; i++ {
		hour := 6 + i%16
		offers[i] = domain.FlightOffer{
			ID:                fmt.Sprintf("offer-%d", i+1),
			PriceTotal:        120 + float64(i*15),
			Currency:          "EUR",
			ValidatingAirline: []string{"BA", "LH", "AF"}[i%3],
			Legs: []domain.FlightLeg{
				{
					StopsCount:        i % 2,
					DepartureDateTime: fmt.Sprintf("2026-09-15T%02d:30:00", hour),
					ArrivalDateTime:   fmt.Sprintf("2026-09-15T%02d:45:00", hour+3),
					DurationMinutes:   195 + i*5,
					Segments: []domain.Segment{
						{
							From:         "EVN",
							To:           "LCA",
							DepartAt:     fmt.Sprintf("2026-09-15T%02d:30:00", hour),
							ArriveAt:     fmt.Sprintf("2026-09-15T%02d:45:00", hour+3),
							Carrier:      []string{"BA", "LH", "AF"}[i%3],
							FlightNumber: fmt.Sprintf("%d", 100+i),
						},
					},
				},
			},
		}
	}

	return offers
}
