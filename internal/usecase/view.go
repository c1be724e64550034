// Package usecase implements the client views and workflows: session actions,
// the flight catalog, booking, payment, confirmation, trips and admin approval.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
)

// Navigator is the view location the workflows read and move.
type Navigator interface {
	Navigate(target string) string
	Path() string
}

// Session is the credential lifecycle used by the auth views.
type Session interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Navbar() session.Navbar
}

// Outcome is the result of a successful view action. A non-empty Redirect is
// the navigation target the client must follow.
type Outcome struct {
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ViewError is a failed view action or load carrying the message shown to the
// user. Redirect is set when the failure also navigates away.
type ViewError struct {
	Message  string
	Redirect string
	Err      error
}

func (e *ViewError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ViewError) Unwrap() error {
	return e.Err
}

// AsViewError unwraps err into a *ViewError.
func AsViewError(err error) (*ViewError, bool) {
	var viewErr *ViewError
	if errors.As(err, &viewErr) {
		return viewErr, true
	}
	return nil, false
}

// failure builds a ViewError. An expired credential always lands on the login
// view because the gateway client has already cleared it.
func failure(message string, err error) *ViewError {
	ve := &ViewError{Message: message, Err: err}
	if errors.Is(err, domain.ErrAuthExpired) {
		ve.Redirect = navigation.PathLogin
	}
	return ve
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
