package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// catalogQuery reads ?q=&status=&sort= into a query.
func catalogQuery(c echo.Context) domain.CatalogQuery {
	return domain.CatalogQuery{
		Search: c.QueryParam("q"),
		Status: c.QueryParam("status"),
		Sort:   domain.ParseSortOption(c.QueryParam("sort")),
	}
}

// hasCatalogQuery reports whether any catalog parameter was sent.
func hasCatalogQuery(c echo.Context) bool {
	q := c.QueryParams()
	return q.Has("q") || q.Has("status") || q.Has("sort")
}

// Dashboard handles GET /api/v1/dashboard
//
// @Summary Open the dashboard
// @Description Fetches the flight catalog once and renders it. Optional query parameters are applied to the fresh list.
// @Tags dashboard
// @Produce json
// @Param q query string false "Search airline, origin or destination"
// @Param status query string false "Flight status or all"
// @Param sort query string false "price, departure or airline"
// @Success 200 {object} usecase.CatalogView
// @Success 303 {object} response.NavigationResponse "Credential rejected"
// @Failure 403 {object} response.ErrorDetail "Account not approved"
// @Failure 502 {object} response.ErrorDetail "Remote API failure"
// @Router /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	view, err := h.catalog.Load(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	if hasCatalogQuery(c) {
		if view, err = h.catalog.Query(catalogQuery(c)); err != nil {
			return h.handleError(c, err)
		}
	}
	return response.OK(c, view)
}

// Flights handles GET /api/v1/dashboard/flights
//
// @Summary Filter and sort the loaded catalog
// @Tags dashboard
// @Produce json
// @Param q query string false "Search airline, origin or destination"
// @Param status query string false "Flight status or all"
// @Param sort query string false "price, departure or airline"
// @Success 200 {object} usecase.CatalogView
// @Failure 409 {object} response.ErrorDetail "Dashboard not loaded"
// @Router /dashboard/flights [get]
func (h *Handler) Flights(c echo.Context) error {
	view, err := h.catalog.Query(catalogQuery(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// Selection handles GET /api/v1/dashboard/selection
//
// @Summary Current booking panel
// @Tags dashboard
// @Produce json
// @Success 200 {object} usecase.BookingSummary
// @Router /dashboard/selection [get]
func (h *Handler) Selection(c echo.Context) error {
	return response.OK(c, h.booking.Summary())
}

// SelectFlight handles POST /api/v1/dashboard/selection
//
// @Summary Select a flight
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body SelectFlightRequest true "Flight"
// @Success 200 {object} usecase.BookingSummary
// @Failure 404 {object} response.ErrorDetail "Flight not in the catalog"
// @Failure 409 {object} response.ErrorDetail "Booking in progress"
// @Router /dashboard/selection [post]
func (h *Handler) SelectFlight(c echo.Context) error {
	var req SelectFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	summary, err := h.booking.Select(req.FlightID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, summary)
}

// ChooseSeat handles PUT /api/v1/dashboard/selection/seat
//
// @Summary Choose the seat class
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body ChooseSeatRequest true "Seat class"
// @Success 200 {object} usecase.BookingSummary
// @Failure 400 {object} response.ErrorDetail "Unknown seat class"
// @Failure 409 {object} response.ErrorDetail "No flight selected"
// @Router /dashboard/selection/seat [put]
func (h *Handler) ChooseSeat(c echo.Context) error {
	var req ChooseSeatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	class, err := req.Parse()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	summary, err := h.booking.ChooseSeat(class)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, summary)
}

// Deselect handles DELETE /api/v1/dashboard/selection
//
// @Summary Close the booking panel
// @Tags dashboard
// @Produce json
// @Success 200 {object} usecase.BookingSummary
// @Failure 409 {object} response.ErrorDetail "Nothing selected"
// @Router /dashboard/selection [delete]
func (h *Handler) Deselect(c echo.Context) error {
	summary, err := h.booking.Deselect()
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, summary)
}

// CreateBooking handles POST /api/v1/dashboard/booking
//
// @Summary Book the selected flight
// @Description Creates the booking and navigates to payment.
// @Tags dashboard
// @Produce json
// @Success 303 {object} response.NavigationResponse
// @Failure 400 {object} response.ErrorDetail "Rejected by the remote API"
// @Failure 409 {object} response.ErrorDetail "No flight selected or already submitting"
// @Failure 502 {object} response.ErrorDetail "Remote API failure"
// @Router /dashboard/booking [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	out, err := h.booking.Submit(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return h.navigate(c, out)
}
