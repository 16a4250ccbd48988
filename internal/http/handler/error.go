package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WarBros01113/Real-SurvEase/internal/http/middleware"
	"github.com/WarBros01113/Real-SurvEase/internal/service"
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

// writeError writes a standardized JSON error response without leaking
// internal errors.
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

// writeServiceError maps service sentinel errors to HTTP responses. Anything
// unrecognized becomes a plain 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "not the owner of this resource")
	case errors.Is(err, service.ErrAlreadyResponded):
		return writeError(c, fiber.StatusConflict, "ALREADY_RESPONDED", "you already responded to this survey")
	case errors.Is(err, service.ErrOwnSurvey):
		return writeError(c, fiber.StatusUnprocessableEntity, "OWN_SURVEY", "cannot respond to your own survey")
	case errors.Is(err, service.ErrInvalidRating):
		return writeError(c, fiber.StatusBadRequest, "INVALID_RATING", "rating must be between 1 and 5")
	case errors.Is(err, service.ErrInvalidURL):
		return writeError(c, fiber.StatusUnprocessableEntity, "UNREACHABLE_URL", "survey url is invalid or unreachable")
	case errors.Is(err, service.ErrTitleRequired):
		return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
	case errors.Is(err, service.ErrNameRequired):
		return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "display name is required")
	case errors.Is(err, service.ErrInvalidTheme):
		return writeError(c, fiber.StatusBadRequest, "INVALID_THEME", "theme must be light or dark")
	case errors.Is(err, service.ErrNoAvatar):
		return writeError(c, fiber.StatusNotFound, "NO_AVATAR", "no avatar uploaded")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses.
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
