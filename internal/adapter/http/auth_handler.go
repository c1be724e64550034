package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Session handles GET /api/v1/session
//
// @Summary Navigation links for the current credential
// @Tags auth
// @Produce json
// @Success 200 {object} session.Navbar
// @Router /session [get]
func (h *Handler) Session(c echo.Context) error {
	return response.OK(c, h.auth.Navbar())
}

// Login handles POST /api/v1/login
//
// @Summary Log in
// @Description Exchanges credentials for an access token and navigates to the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 303 {object} response.NavigationResponse
// @Failure 400 {object} response.ErrorDetail "Missing credentials"
// @Failure 401 {object} response.ErrorDetail "Rejected credentials"
// @Router /login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	out, err := h.auth.Login(c.Request().Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return h.navigate(c, out)
}

// Register handles POST /api/v1/register
//
// @Summary Create an account
// @Description New accounts wait for admin approval before they can book.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Sign-up form"
// @Success 303 {object} response.NavigationResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	out, err := h.auth.Register(c.Request().Context(), domain.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return h.navigate(c, out)
}

// Logout handles POST /api/v1/logout
//
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 303 {object} response.NavigationResponse
// @Router /logout [post]
func (h *Handler) Logout(c echo.Context) error {
	out, err := h.auth.Logout(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return h.navigate(c, out)
}
