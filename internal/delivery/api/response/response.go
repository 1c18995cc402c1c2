// Package response renders the uniform JSON envelope returned by every endpoint.
package response

import (
	"net/http"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every successful response
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorEnvelope is the body of every failed response
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	ErrorCode  string `json:"errorCode"`
	Details    string `json:"details,omitempty"` // Only for 4xx other than 401 and 403
	RequestID  string `json:"requestId"`
	Stack      string `json:"stack,omitempty"` // Only outside production
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created returns a 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details, stack string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		ErrorCode:  errorCode,
		Details:    details,
		RequestID:  deliverycontext.RequestID(c),
		Stack:      stack,
	})
}

// List builds the data of a paginated list under key.
func List[T any](key string, page *entity.Page[T]) map[string]any {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	return map[string]any{
		key:          items,
		"pagination": page.Pagination,
	}
}
