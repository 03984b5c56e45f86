package response

import (
	"net/http"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	StatusCode int       `json:"statusCode"`
	Data       any       `json:"data"`
	Message    string    `json:"message"`
	Success    bool      `json:"success"`
	Meta       *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Code       string    `json:"code"`    // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message    string    `json:"message"` // User-friendly error message
	Success    bool      `json:"success"`
	Errors     []string  `json:"errors"` // Per-field details, only for 4xx other than 401/403
	Meta       *MetaInfo `json:"meta,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"requestId"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}
	if data == nil {
		data = struct{}{}
	}

	return c.JSON(statusCode, SuccessResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
		Meta:       meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details []string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden || details == nil {
		details = []string{}
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Code:       errorCode,
		Message:    message,
		Success:    false,
		Errors:     details,
		Meta:       meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
