package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// NavigationResponse is the body of a 303 navigation answer.
type NavigationResponse struct {
	Redirect string `json:"redirect"`
	Message  string `json:"message,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Navigate writes a 303 See Other pointing at the view the client must
// open next. The message, if any, is the notice to show when it does.
func Navigate(c echo.Context, target, message string) error {
	c.Response().Header().Set(echo.HeaderLocation, target)
	return c.JSON(http.StatusSeeOther, &NavigationResponse{
		Redirect: target,
		Message:  message,
	})
}

// Attachment writes a downloadable file.
func Attachment(c echo.Context, filename, contentType string, content []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, contentType, content)
}
