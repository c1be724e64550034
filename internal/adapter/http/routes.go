package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and every view route.
// View routes live under /api/v1 and mirror the client's navigation paths.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on
// the versioned group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.GET("/session", h.Session)
	api.POST("/login", h.Login)
	api.POST("/register", h.Register)
	api.POST("/logout", h.Logout)

	dashboard := api.Group("/dashboard")
	dashboard.GET("", h.Dashboard)
	dashboard.GET("/flights", h.Flights)
	dashboard.GET("/selection", h.Selection)
	dashboard.POST("/selection", h.SelectFlight)
	dashboard.PUT("/selection/seat", h.ChooseSeat)
	dashboard.DELETE("/selection", h.Deselect)
	dashboard.POST("/booking", h.CreateBooking)

	payment := api.Group("/payment")
	payment.GET("", h.Payment)
	payment.GET("/form", h.PaymentState)
	payment.PUT("/form", h.PaymentForm)
	payment.PUT("/passengers", h.PassengerCount)
	payment.PUT("/passengers/:index", h.PassengerName)
	payment.POST("/submit", h.SubmitPayment)

	api.GET("/booking-success", h.Confirmation)
	api.GET("/booking-success/ticket", h.ConfirmationTicket)

	api.GET("/my-trips", h.MyTrips)
	api.GET("/my-trips/:id/ticket", h.TripTicket)

	admin := api.Group("/admin")
	admin.GET("", h.Admin)
	admin.GET("/users", h.AdminUsers)
	admin.POST("/users/:id/approve", h.ApproveUser)
	admin.POST("/users/:id/reject", h.RejectUser)
}
