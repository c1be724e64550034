package http

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// Payment handles GET /api/v1/payment
//
// @Summary Open the payment view
// @Description Loads the flight named by the navigation parameters and starts a fresh form.
// @Tags payment
// @Produce json
// @Param flight query string true "Flight id"
// @Param seat query string false "Seat class, defaults to Economy"
// @Success 200 {object} usecase.PaymentView
// @Success 303 {object} response.NavigationResponse "Flight could not be loaded"
// @Failure 404 {object} response.ErrorDetail "No flight named"
// @Router /payment [get]
func (h *Handler) Payment(c echo.Context) error {
	view, err := h.payment.Activate(c.Request().Context(), navigation.ParsePaymentParams(c.QueryParams()))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// PaymentState handles GET /api/v1/payment/form
//
// @Summary Current payment page
// @Description Returns the form and price summary without fetching the flight again.
// @Tags payment
// @Produce json
// @Success 200 {object} usecase.PaymentView
// @Failure 409 {object} response.ErrorDetail "Payment view not loaded"
// @Router /payment/form [get]
func (h *Handler) PaymentState(c echo.Context) error {
	view, err := h.payment.View()
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// PaymentForm handles PUT /api/v1/payment/form
//
// @Summary Update payer, card and billing fields
// @Description Fields are set by wire name. Either every field is applied or none is.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body PaymentFormRequest true "Fields by name"
// @Success 200 {object} usecase.PaymentView
// @Failure 400 {object} response.ErrorDetail "Unknown field"
// @Failure 409 {object} response.ErrorDetail "Not loaded or processing"
// @Router /payment/form [put]
func (h *Handler) PaymentForm(c echo.Context) error {
	var req PaymentFormRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	view, err := h.payment.SetFields(req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// PassengerCount handles PUT /api/v1/payment/passengers
//
// @Summary Set the passenger count
// @Tags payment
// @Accept json
// @Produce json
// @Param request body PassengerCountRequest true "Count, clamped to 1..9"
// @Success 200 {object} usecase.PaymentView
// @Router /payment/passengers [put]
func (h *Handler) PassengerCount(c echo.Context) error {
	var req PassengerCountRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	view, err := h.payment.SetPassengerCount(req.Count)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// PassengerName handles PUT /api/v1/payment/passengers/:index
//
// @Summary Set one passenger's name
// @Tags payment
// @Accept json
// @Produce json
// @Param index path int true "Zero-based passenger index"
// @Param request body PassengerNameRequest true "Full name"
// @Success 200 {object} usecase.PaymentView
// @Failure 400 {object} response.ErrorDetail "Index out of range"
// @Router /payment/passengers/{index} [put]
func (h *Handler) PassengerName(c echo.Context) error {
	index, err := cast.ToIntE(c.Param("index"))
	if err != nil {
		return response.ValidationError(c, map[string]string{"index": "index must be an integer"})
	}

	var req PassengerNameRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	view, err := h.payment.SetPassengerName(index, req.Name)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// SubmitPayment handles POST /api/v1/payment/submit
//
// @Summary Pay for the booking
// @Description Creates a payment intent, confirms it and navigates to the confirmation view.
// @Tags payment
// @Produce json
// @Success 303 {object} response.NavigationResponse
// @Failure 400 {object} response.ErrorDetail "Missing fields or rejected payment"
// @Failure 409 {object} response.ErrorDetail "Already processing"
// @Failure 502 {object} response.ErrorDetail "Remote API failure"
// @Router /payment/submit [post]
func (h *Handler) SubmitPayment(c echo.Context) error {
	out, err := h.payment.Submit(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return h.navigate(c, out)
}
