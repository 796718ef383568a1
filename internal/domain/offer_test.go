package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"hours and minutes", "PT2H35M", 155},
		{"minutes only", "PT45M", 45},
		{"hours only", "PT3H", 180},
		{"zero minutes", "PT0M", 0},
		{"empty string", "", 0},
		{"malformed", "2h35m", 0},
		{"garbage", "not-a-duration", 0},
		{"large", "PT14H5M", 845},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDurationMinutes(tt.input))
		})
	}
}

func TestFlightOffer_TotalDurationMinutes(t *testing.T) {
	offer := FlightOffer{
		Legs: []FlightLeg{
			{DurationMinutes: 155},
			{DurationMinutes: 200},
		},
	}

	assert.Equal(t, 355, offer.TotalDurationMinutes())
}

func TestFlightOffer_TotalDurationMinutes_NoLegs(t *testing.T) {
	offer := FlightOffer{}

	assert.Equal(t, 0, offer.TotalDurationMinutes())
}

func TestFlightOffer_IsRoundTrip(t *testing.T) {
	oneWay := FlightOffer{Legs: []FlightLeg{{}}}
	roundTrip := FlightOffer{Legs: []FlightLeg{{}, {}}}

	assert.False(t, oneWay.IsRoundTrip())
	assert.True(t, roundTrip.IsRoundTrip())
}
