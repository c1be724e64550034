package domain

import (
	"fmt"
	"strings"
)

// PaymentForm is the transient payer, passenger, card and billing capture.
// Card and billing values are opaque; only presence is checked.
type PaymentForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`

	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`

	passengerCount int
	passengerNames []string
}

// NewPaymentForm returns an empty form for a single passenger.
func NewPaymentForm() *PaymentForm {
	return &PaymentForm{
		passengerCount: MinPassengers,
		passengerNames: make([]string, MinPassengers),
	}
}

// PassengerCount returns the current passenger count.
func (f *PaymentForm) PassengerCount() int {
	return f.passengerCount
}

// PassengerNames returns a copy of the passenger names.
// Its length always equals PassengerCount.
func (f *PaymentForm) PassengerNames() []string {
	names := make([]string, len(f.passengerNames))
	copy(names, f.passengerNames)
	return names
}

// SetPassengerCount clamps n to [MinPassengers, MaxPassengers] and resizes the
// name list to match. Names at surviving indices are kept, new slots are empty,
// and shrinking drops names from the end. It returns the applied count.
func (f *PaymentForm) SetPassengerCount(n int) int {
	n = ClampPassengers(n)
	names := make([]string, n)
	copy(names, f.passengerNames)
	f.passengerCount = n
	f.passengerNames = names
	return n
}

// SetPassengerName sets the name at index (zero-based).
func (f *PaymentForm) SetPassengerName(index int, name string) error {
	if index < 0 || index >= len(f.passengerNames) {
		return fmt.Errorf("%w: passenger index %d out of range [0,%d)", ErrInvalidRequest, index, len(f.passengerNames))
	}
	f.passengerNames[index] = name
	return nil
}

// SetField assigns one of the payer, card or billing fields by its wire name.
func (f *PaymentForm) SetField(name, value string) error {
	switch name {
	case "first_name":
		f.FirstName = value
	case "last_name":
		f.LastName = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "card_number":
		f.CardNumber = value
	case "expiry_date":
		f.ExpiryDate = value
	case "cvv":
		f.CVV = value
	case "billing_address":
		f.BillingAddress = value
	case "city":
		f.City = value
	case "zip_code":
		f.ZipCode = value
	default:
		return fmt.Errorf("%w: unknown payment field %q", ErrInvalidRequest, name)
	}
	return nil
}

// Validate checks required presence of every field and passenger name.
// Returned errors wrap ErrMissingField.
func (f *PaymentForm) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"card_number", f.CardNumber},
		{"expiry_date", f.ExpiryDate},
		{"cvv", f.CVV},
		{"billing_address", f.BillingAddress},
		{"city", f.City},
		{"zip_code", f.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}
	for i, name := range f.passengerNames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: passenger %d full name", ErrMissingField, i+1)
		}
	}
	return nil
}

// PaymentIntentRequest is step one of the two-phase payment.
type PaymentIntentRequest struct {
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	FlightID       string    `json:"flight_id"`
	SeatClass      SeatClass `json:"seat_class"`
	PassengerCount int       `json:"passenger_count"`
}

// PaymentIntent is the server-side record created by step one.
type PaymentIntent struct {
	ID           string `json:"payment_intent_id"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// PaymentConfirmation is step two of the two-phase payment.
type PaymentConfirmation struct {
	IntentID       string    `json:"payment_intent_id"`
	FlightID       string    `json:"flight_id"`
	SeatClass      SeatClass `json:"seat_class"`
	PassengerCount int       `json:"passenger_count"`
	Amount         float64   `json:"amount"`
	PassengerNames []string  `json:"passenger_names"`
}

// PaymentReceipt is returned once the intent is confirmed.
type PaymentReceipt struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status,omitempty"`
}
