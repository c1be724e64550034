package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/usecase"
)

// UseCases groups the view workflows served by the handler.
type UseCases struct {
	Auth         usecase.AuthUseCase
	Catalog      usecase.CatalogUseCase
	Booking      usecase.BookingUseCase
	Payment      usecase.PaymentUseCase
	Confirmation usecase.ConfirmationUseCase
	Trips        usecase.TripsUseCase
	Admin        usecase.AdminUseCase
}

// Handler handles HTTP requests for every client view.
type Handler struct {
	auth         usecase.AuthUseCase
	catalog      usecase.CatalogUseCase
	booking      usecase.BookingUseCase
	payment      usecase.PaymentUseCase
	confirmation usecase.ConfirmationUseCase
	trips        usecase.TripsUseCase
	admin        usecase.AdminUseCase
}

// NewHandler creates a Handler over the given use cases.
func NewHandler(uc UseCases) *Handler {
	return &Handler{
		auth:         uc.Auth,
		catalog:      uc.Catalog,
		booking:      uc.Booking,
		payment:      uc.Payment,
		confirmation: uc.Confirmation,
		trips:        uc.Trips,
		admin:        uc.Admin,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// navigate answers a successful view action.
func (h *Handler) navigate(c echo.Context, out usecase.Outcome) error {
	if out.Redirect == "" {
		return response.OK(c, out)
	}
	return response.Navigate(c, out.Redirect, out.Message)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps view and domain errors to HTTP responses. A view error
// that carries a redirect becomes a 303 navigation.
func (h *Handler) handleError(c echo.Context, err error) error {
	message := err.Error()
	if ve, ok := usecase.AsViewError(err); ok {
		if ve.Redirect != "" {
			return response.Navigate(c, ve.Redirect, ve.Message)
		}
		message = ve.Message
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidSeatClass),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrValidation):
		return response.ValidationErrorWithMessage(c, message)

	case errors.Is(err, domain.ErrAuthExpired):
		return response.Unauthorized(c, message)
	case errors.Is(err, domain.ErrAccountNotApproved):
		return response.Forbidden(c, message)

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFlightUnavailable),
		errors.Is(err, domain.ErrUserNotPending):
		return response.NotFound(c, message)

	case errors.Is(err, domain.ErrActionInProgress),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNoFlightSelected),
		errors.Is(err, domain.ErrViewNotLoaded):
		return response.Conflict(c, message)

	case errors.Is(err, domain.ErrNetwork):
		return response.ServiceUnavailableWithMessage(c, message)
	case errors.Is(err, domain.ErrServer):
		return response.BadGateway(c, message)
	}

	return response.InternalServerError(c)
}
