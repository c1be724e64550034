package usecase

import (
	"errors"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// User-facing messages shared by several views.
const (
	MsgAuthRequired      = "Authentication required. Please login first."
	MsgNotApproved       = "Your account is not approved yet. Please contact admin."
	MsgEndpointNotFound  = "API endpoint not found. Please check server configuration."
	MsgUnknownError      = "Unknown error"
	MsgFlightUnavailable = "The flight you're trying to book is no longer available."
)

// loadFailureMessage maps a list-load failure to its contextual message.
// subject completes "Failed to load <subject>: ...".
func loadFailureMessage(subject string, err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		return MsgAuthRequired
	case errors.Is(err, domain.ErrAccountNotApproved):
		return MsgNotApproved
	case errors.Is(err, domain.ErrNotFound):
		return MsgEndpointNotFound
	default:
		reason := firstNonEmpty(domain.ServerDetail(err), domain.ErrorSummary(err), MsgUnknownError)
		return "Failed to load " + subject + ": " + reason
	}
}

// paymentFailureMessage classifies a failed payment step.
func paymentFailureMessage(err error) string {
	var reason string
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		reason = "Authentication required. Please login again."
	case errors.Is(err, domain.ErrValidation):
		reason = firstNonEmpty(domain.ServerDetail(err), "Invalid payment data")
	case errors.Is(err, domain.ErrAccountNotApproved):
		reason = MsgNotApproved
	default:
		reason = firstNonEmpty(domain.ServerDetail(err), domain.ErrorSummary(err), "Unknown error occurred")
	}
	return "Payment failed. Please try again. Error: " + reason
}
