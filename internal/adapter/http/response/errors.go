package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message})
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message)
}

// Unauthorized writes a 401 response. Used when the remote API rejects
// credentials outside a view that can redirect, such as login.
func Unauthorized(c echo.Context, message string) error {
	return writeError(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden writes a 403 response for accounts that are not approved.
func Forbidden(c echo.Context, message string) error {
	return writeError(c, http.StatusForbidden, CodeForbidden, message)
}

// NotFound writes a 404 response.
func NotFound(c echo.Context, message string) error {
	return writeError(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict writes a 409 response for actions that clash with the view state.
func Conflict(c echo.Context, message string) error {
	return writeError(c, http.StatusConflict, CodeConflict, message)
}

// BadGateway writes a 502 response carrying the remote API's message.
func BadGateway(c echo.Context, message string) error {
	return writeError(c, http.StatusBadGateway, CodeUpstreamError, message)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable)
}

// ServiceUnavailableWithMessage writes a 503 Service Unavailable response with a custom message.
func ServiceUnavailableWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, message)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}
