package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Admin handles GET /api/v1/admin
//
// @Summary Open the approval view
// @Tags admin
// @Produce json
// @Success 200 {object} usecase.AdminView
// @Failure 502 {object} response.ErrorDetail "Pending users could not be loaded"
// @Router /admin [get]
func (h *Handler) Admin(c echo.Context) error {
	view, err := h.admin.Load(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// AdminUsers handles GET /api/v1/admin/users
//
// @Summary Current pending list
// @Description Returns the locally held list without a re-fetch.
// @Tags admin
// @Produce json
// @Success 200 {object} usecase.AdminView
// @Failure 409 {object} response.ErrorDetail "Approval view not loaded"
// @Router /admin/users [get]
func (h *Handler) AdminUsers(c echo.Context) error {
	view, err := h.admin.View()
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// ApproveUser handles POST /api/v1/admin/users/:id/approve
//
// @Summary Approve a pending user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} usecase.ReviewResult
// @Failure 404 {object} response.ErrorDetail "User not listed"
// @Failure 409 {object} response.ErrorDetail "Review in progress"
// @Router /admin/users/{id}/approve [post]
func (h *Handler) ApproveUser(c echo.Context) error {
	return h.review(c, domain.ActionApprove)
}

// RejectUser handles POST /api/v1/admin/users/:id/reject
//
// @Summary Reject a pending user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} usecase.ReviewResult
// @Failure 404 {object} response.ErrorDetail "User not listed"
// @Failure 409 {object} response.ErrorDetail "Review in progress"
// @Router /admin/users/{id}/reject [post]
func (h *Handler) RejectUser(c echo.Context) error {
	return h.review(c, domain.ActionReject)
}

func (h *Handler) review(c echo.Context, action domain.ApprovalAction) error {
	res, err := h.admin.Review(c.Request().Context(), c.Param("id"), action)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, res)
}
