package domain

import (
	"strings"
	"time"
)

// BookingDraft is the client-held selection made before booking creation.
type BookingDraft struct {
	Flight    Flight    `json:"flight"`
	SeatClass SeatClass `json:"seat_class"`
}

// Price returns the displayed single-seat price for the draft.
func (d BookingDraft) Price() float64 {
	return SeatPrice(d.Flight.BasePrice, d.SeatClass)
}

// BookingRequest is the create-booking payload.
type BookingRequest struct {
	FlightID  string    `json:"flight"`
	SeatClass SeatClass `json:"seat_class"`
}

// PaymentStatus is the server-owned payment state of a booking.
type PaymentStatus string

// Payment statuses reported by the API.
const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// Tone maps the payment status to its display tone.
func (s PaymentStatus) Tone() Tone {
	switch s {
	case PaymentCompleted:
		return ToneSuccess
	case PaymentPending:
		return ToneWarning
	case PaymentFailed:
		return ToneDanger
	default:
		return ToneNeutral
	}
}

// Booking is a persisted booking as returned by the API.
type Booking struct {
	ID             string        `json:"id"`
	Flight         Flight        `json:"flight"`
	SeatClass      SeatClass     `json:"seat_class"`
	PassengerCount int           `json:"passenger_count"`
	AmountPaid     float64       `json:"amount_paid"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	BookedAt       time.Time     `json:"booking_date"`
}

// Reference is the customer-facing booking reference ("AB" + id).
func (b Booking) Reference() string {
	return "AB" + b.ID
}

// IsUpcoming reports whether the flight departs strictly after now.
func (b Booking) IsUpcoming(now time.Time) bool {
	return b.Flight.DepartureTime.After(now)
}

// TripFilter selects which bookings the trips view lists.
type TripFilter string

// Built-in trip filters. Any other value is matched against the payment status.
const (
	TripsAll       TripFilter = "all"
	TripsUpcoming  TripFilter = "upcoming"
	TripsCompleted TripFilter = "completed"
)

// ParseTripFilter normalises a filter value; empty means TripsAll.
func ParseTripFilter(s string) TripFilter {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TripsAll
	}
	return TripFilter(s)
}

// Matches classifies b against the filter at the given instant.
// Upcoming and completed are derived from departure time, never stored.
func (f TripFilter) Matches(b Booking, now time.Time) bool {
	switch f {
	case TripsAll, "":
		return true
	case TripsUpcoming:
		return b.IsUpcoming(now)
	case TripsCompleted:
		return !b.IsUpcoming(now)
	default:
		return strings.ToLower(string(b.PaymentStatus)) == string(f)
	}
}
