package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// DefaultBodyLimit caps request bodies. Forms and credentials are small.
const DefaultBodyLimit = "64K"

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line and outbound call carries it
//  2. RequestLogger, which logs every request including recovered panics
//  3. Recover, which wraps the handlers
//  4. BodyLimit
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
	e.Use(echomw.BodyLimit(DefaultBodyLimit))
}

// Chain returns the request ID, logging and recovery middleware as a slice
// for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
