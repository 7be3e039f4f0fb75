package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bindash/internal/dashboard"
	"bindash/internal/http/middleware"
	"bindash/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_SORT_FIELD", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps DashboardService errors onto the error envelope.
// A failed load is the one error whose message is shown to the user as-is.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotLoaded):
		return writeError(c, fiber.StatusServiceUnavailable, "LOADING", "Loading...")
	case errors.Is(err, service.ErrLoadFailed):
		return writeError(c, fiber.StatusServiceUnavailable, "LOAD_FAILED", err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "trash bin not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// writeStateError maps query/body state validation errors.
func writeStateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidSortField):
		return writeError(c, fiber.StatusBadRequest, "INVALID_SORT_FIELD", "sort must be one of id, location, fillLevel (or fill_level)")
	case errors.Is(err, dashboard.ErrInvalidSortDirection):
		return writeError(c, fiber.StatusBadRequest, "INVALID_SORT_ORDER", "order must be asc or desc")
	default:
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
