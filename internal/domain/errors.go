package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// API error taxonomy. An *APIError matches exactly one of these via errors.Is.
var (
	// ErrAuthExpired is an HTTP 401 on any call: the credential is invalid or expired.
	ErrAuthExpired = errors.New("authentication required")

	// ErrAccountNotApproved is an HTTP 403: the account is awaiting admin approval.
	ErrAccountNotApproved = errors.New("account not approved")

	// ErrNotFound is an HTTP 404, usually a configuration problem.
	ErrNotFound = errors.New("not found")

	// ErrValidation is an HTTP 400 carrying a server-side validation message.
	ErrValidation = errors.New("validation failed")

	// ErrServer is any other non-success status.
	ErrServer = errors.New("server error")

	// ErrNetwork means no response was received at all.
	ErrNetwork = errors.New("network error")
)

// Client-side workflow errors.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidTransition = errors.New("invalid workflow transition")
	ErrNoFlightSelected  = errors.New("no flight selected")
	ErrInvalidSeatClass  = errors.New("invalid seat class")
	ErrActionInProgress  = errors.New("action already in progress")
	ErrMissingField      = errors.New("required field missing")
	ErrViewNotLoaded     = errors.New("view not loaded")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrFlightUnavailable = errors.New("flight not available")
	ErrUserNotPending    = errors.New("user not pending")
)

// APIError describes a failed call to the remote API.
type APIError struct {
	// StatusCode is the HTTP status, or 0 when no response arrived
	StatusCode int

	// Detail is the server's "detail" field, falling back to "error" then "message"
	Detail string

	// Body is the raw response body, kept for views that echo it verbatim
	Body []byte

	// Err is the transport error when StatusCode is 0
	Err error
}

// NewAPIError builds an error for a received non-success response.
func NewAPIError(status int, detail string, body []byte) *APIError {
	return &APIError{StatusCode: status, Detail: detail, Body: body}
}

// NewNetworkError builds an error for a call that produced no response.
func NewNetworkError(err error) *APIError {
	return &APIError{Err: err}
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("api request failed: %v", e.Err)
		}
		return "api request failed"
	}
	if e.Detail != "" {
		return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api returned %d", e.StatusCode)
}

// Unwrap returns the transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the taxonomy sentinel for the status code.
func (e *APIError) Is(target error) bool {
	return e.Kind() == target
}

// Kind returns the taxonomy sentinel for this error.
func (e *APIError) Kind() error {
	switch {
	case e.StatusCode == 0:
		return ErrNetwork
	case e.StatusCode == http.StatusUnauthorized:
		return ErrAuthExpired
	case e.StatusCode == http.StatusForbidden:
		return ErrAccountNotApproved
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadRequest:
		return ErrValidation
	default:
		return ErrServer
	}
}

// Summary is the short user-facing description used when the server sent no
// message of its own.
func (e *APIError) Summary() string {
	if e.StatusCode == 0 {
		return "Network Error"
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ServerDetail returns the server-supplied message carried by err, if any.
func ServerDetail(err error) string {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Detail
	}
	return ""
}

// ErrorSummary describes err for a user: the API summary for API errors,
// otherwise the error text.
func ErrorSummary(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Summary()
	}
	return err.Error()
}
