package http

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Confirmation handles GET /api/v1/booking-success
//
// @Summary Open the confirmation view
// @Description Rebuilds the itinerary from the navigation parameters.
// @Tags confirmation
// @Produce json
// @Param flight query string false "Flight id"
// @Param seat query string false "Seat class"
// @Param total query number false "Total paid"
// @Param bookingId query string false "Booking reference"
// @Param passengers query int false "Passenger count"
// @Param passengerNames query string false "JSON array of names"
// @Success 200 {object} usecase.ConfirmationView
// @Failure 400 {object} response.ErrorDetail "Malformed parameters"
// @Router /booking-success [get]
func (h *Handler) Confirmation(c echo.Context) error {
	view, err := h.confirmation.Load(c.Request().Context(), c.QueryParams())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// ConfirmationTicket handles GET /api/v1/booking-success/ticket
// The ticket is rendered from the last loaded confirmation view.
//
// @Summary Printable e-ticket
// @Tags confirmation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} response.ErrorDetail "Flight not available"
// @Failure 409 {object} response.ErrorDetail "Confirmation not loaded"
// @Router /booking-success/ticket [get]
func (h *Handler) ConfirmationTicket(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.confirmation.Ticket(&buf); err != nil {
		return h.handleError(c, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// MyTrips handles GET /api/v1/my-trips
//
// @Summary Open the trips view
// @Description Fetches the booking list on every call and applies the filter.
// @Tags trips
// @Produce json
// @Param filter query string false "all, upcoming, completed or a payment status"
// @Success 200 {object} usecase.TripsView
// @Success 303 {object} response.NavigationResponse "Credential rejected"
// @Failure 502 {object} response.ErrorDetail "Remote API failure"
// @Router /my-trips [get]
func (h *Handler) MyTrips(c echo.Context) error {
	view, err := h.trips.Load(c.Request().Context(), domain.ParseTripFilter(c.QueryParam("filter")))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// TripTicket handles GET /api/v1/my-trips/:id/ticket
//
// @Summary Download a text e-ticket
// @Tags trips
// @Produce plain
// @Param id path string true "Booking id"
// @Success 200 {string} string "Ticket file"
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Failure 409 {object} response.ErrorDetail "Trips not loaded"
// @Router /my-trips/{id}/ticket [get]
func (h *Handler) TripTicket(c echo.Context) error {
	file, err := h.trips.Ticket(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Attachment(c, file.Filename, file.ContentType, file.Content)
}
