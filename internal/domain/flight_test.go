package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlightStatus_Tone(t *testing.T) {
	tests := []struct {
		name   string
		status FlightStatus
		want   Tone
		known  bool
	}{
		{name: "on time", status: FlightOnTime, want: ToneSuccess, known: true},
		{name: "delayed", status: FlightDelayed, want: ToneWarning, known: true},
		{name: "cancelled", status: FlightCancelled, want: ToneDanger, known: true},
		{name: "boarding is neutral", status: FlightStatus("Boarding"), want: ToneNeutral},
		{name: "empty is neutral", status: FlightStatus(""), want: ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Tone())
			assert.Equal(t, tt.known, tt.status.IsKnown())
		})
	}
}

func TestFlight_DurationHours(t *testing.T) {
	dep := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		arrival time.Time
		want    int
	}{
		{name: "exact hours", arrival: dep.Add(3 * time.Hour), want: 3},
		{name: "rounds down under half", arrival: dep.Add(2*time.Hour + 29*time.Minute), want: 2},
		{name: "rounds up at half", arrival: dep.Add(2*time.Hour + 30*time.Minute), want: 3},
		{name: "short hop rounds to zero", arrival: dep.Add(20 * time.Minute), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Flight{DepartureTime: dep, ArrivalTime: tt.arrival}
			assert.Equal(t, tt.want, f.DurationHours())
		})
	}
}

func TestFlight_Route(t *testing.T) {
	f := Flight{Origin: "JFK", Destination: "LAX"}
	assert.Equal(t, "JFK → LAX", f.Route())
}

func TestFlight_MatchesText(t *testing.T) {
	f := Flight{Airline: "Delta", Origin: "JFK", Destination: "LAX"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty matches", text: "", want: true},
		{name: "airline case-insensitive", text: "DEL", want: true},
		{name: "origin lowercase", text: "jfk", want: true},
		{name: "destination substring", text: "la", want: true},
		{name: "flight number is not searched", text: "DL100", want: false},
		{name: "no match", text: "sfo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.MatchesText(tt.text))
		})
	}
}
