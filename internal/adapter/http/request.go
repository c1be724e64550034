// Package http exposes the client's views as a local JSON API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Username string `json:"username" example:"ann"`
	Password string `json:"password" example:"secret"`
}

// RegisterRequest is the body of POST /api/v1/register.
type RegisterRequest struct {
	Username string `json:"username" example:"ann"`
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret"`
}

// SelectFlightRequest is the body of POST /api/v1/dashboard/selection.
type SelectFlightRequest struct {
	FlightID string `json:"flight_id" example:"7"`
}

// ChooseSeatRequest is the body of PUT /api/v1/dashboard/selection/seat.
type ChooseSeatRequest struct {
	SeatClass string `json:"seat_class" example:"Business"`
}

// PassengerCountRequest is the body of PUT /api/v1/payment/passengers.
type PassengerCountRequest struct {
	// Count is clamped to [1,9]
	Count int `json:"count" example:"2"`
}

// PassengerNameRequest is the body of PUT /api/v1/payment/passengers/{index}.
type PassengerNameRequest struct {
	Name string `json:"name" example:"Ann Lee"`
}

// PaymentFormRequest carries payer, card and billing fields by wire name,
// for example {"first_name": "Ann", "card_number": "4242424242424242"}.
type PaymentFormRequest map[string]string

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the sign-up form. Fields are trimmed, except the password.
func (r *RegisterRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		errs.Add("username", "username is required")
	}

	r.Email = strings.TrimSpace(r.Email)
	switch {
	case r.Email == "":
		errs.Add("email", "email is required")
	case !emailPattern.MatchString(r.Email):
		errs.Add("email", "email must be a valid address")
	}

	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that a flight is named.
func (r *SelectFlightRequest) Validate() error {
	r.FlightID = strings.TrimSpace(r.FlightID)
	if r.FlightID == "" {
		errs := &ValidationErrors{}
		errs.Add("flight_id", "flight_id is required")
		return errs
	}
	return nil
}

// Parse returns the requested class. An empty value is the default class.
func (r *ChooseSeatRequest) Parse() (domain.SeatClass, error) {
	class, err := domain.ParseSeatClass(r.SeatClass)
	if err != nil {
		errs := &ValidationErrors{}
		errs.Add("seat_class", "seat_class must be one of Economy, Regular, Business")
		return "", errs
	}
	return class, nil
}
