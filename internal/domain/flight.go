// Package domain contains the core entities and rules of the flight booking client.
// Entities owned by the remote API (Flight, Booking, PendingUser) are read-only here;
// BookingDraft and PaymentForm are client-held and never persisted.
package domain

import (
	"math"
	"strings"
	"time"
)

// FlightStatus is the operational status reported by the API.
type FlightStatus string

// Known flight statuses. Anything else renders with a neutral tone.
const (
	FlightOnTime    FlightStatus = "On Time"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
)

// Tone is a presentation hint derived from a status value.
type Tone string

// Available tones.
const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

// Tone maps the flight status to its display tone.
func (s FlightStatus) Tone() Tone {
	switch s {
	case FlightOnTime:
		return ToneSuccess
	case FlightDelayed:
		return ToneWarning
	case FlightCancelled:
		return ToneDanger
	default:
		return ToneNeutral
	}
}

// IsKnown reports whether the status is one of the recognised values.
func (s FlightStatus) IsKnown() bool {
	return s.Tone() != ToneNeutral
}

// Flight is a scheduled flight as supplied by the API.
type Flight struct {
	// ID is the API identifier (numeric ids are carried as strings)
	ID string `json:"id"`

	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`

	// Origin and Destination are airport codes (e.g., "JFK")
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`

	// BasePrice is the Economy price for one passenger, currency agnostic
	BasePrice float64 `json:"price"`

	Status FlightStatus `json:"status"`
}

// DurationHours returns the flight time rounded to the nearest whole hour.
func (f Flight) DurationHours() int {
	return int(math.Round(f.ArrivalTime.Sub(f.DepartureTime).Hours()))
}

// Route returns "ORIGIN → DESTINATION".
func (f Flight) Route() string {
	return f.Origin + " → " + f.Destination
}

// MatchesText reports whether text is a case-insensitive substring of the
// airline, origin or destination. Empty text matches every flight.
func (f Flight) MatchesText(text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(f.Airline), needle) ||
		strings.Contains(strings.ToLower(f.Origin), needle) ||
		strings.Contains(strings.ToLower(f.Destination), needle)
}
