package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/logging"
	"pokedex/internal/service"
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
// - code: machine-readable short error code (e.g., "INVALID_NUMBER", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
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

type errorMapping struct {
	err    error
	status int
	code   string
}

// serviceErrors maps service sentinels to responses. The sentinel's text is the message.
var serviceErrors = []errorMapping{
	{service.ErrInvalidUserID, fiber.StatusBadRequest, "INVALID_USER_ID"},
	{service.ErrProfileNotFound, fiber.StatusNotFound, "PROFILE_NOT_FOUND"},
	{service.ErrInvalidUsername, fiber.StatusBadRequest, "INVALID_USERNAME"},
	{service.ErrUsernameTaken, fiber.StatusConflict, "USERNAME_TAKEN"},
	{service.ErrSpeciesNotFound, fiber.StatusNotFound, "SPECIES_NOT_FOUND"},
	{service.ErrInvalidSort, fiber.StatusBadRequest, "INVALID_SORT"},
	{service.ErrInvalidNumber, fiber.StatusBadRequest, "INVALID_NUMBER"},
	{service.ErrInvalidCategory, fiber.StatusBadRequest, "INVALID_CATEGORY"},
	{service.ErrItemNotFound, fiber.StatusNotFound, "ITEM_NOT_FOUND"},
	{service.ErrAlreadyOwned, fiber.StatusConflict, "ALREADY_OWNED"},
	{service.ErrInsufficientGold, fiber.StatusConflict, "INSUFFICIENT_GOLD"},
	{service.ErrNotOwned, fiber.StatusConflict, "NOT_OWNED"},
	{service.ErrImageUnavailable, fiber.StatusNotFound, "IMAGE_UNAVAILABLE"},
	{service.ErrInvalidMissionKind, fiber.StatusBadRequest, "INVALID_MISSION_KIND"},
	{service.ErrMissionNotFound, fiber.StatusNotFound, "MISSION_NOT_FOUND"},
	{service.ErrMissionNotCompleted, fiber.StatusConflict, "MISSION_NOT_COMPLETED"},
	{service.ErrMissionAlreadyClaimed, fiber.StatusConflict, "MISSION_ALREADY_CLAIMED"},
	{service.ErrTeamNotFound, fiber.StatusNotFound, "TEAM_NOT_FOUND"},
	{service.ErrInvalidTeamName, fiber.StatusBadRequest, "INVALID_TEAM_NAME"},
	{service.ErrInvalidTeamSize, fiber.StatusBadRequest, "INVALID_TEAM_SIZE"},
	{service.ErrTeamLimit, fiber.StatusConflict, "TEAM_LIMIT"},
}

// writeServiceError translates a service error. Unknown errors are logged and reported as 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return writeError(c, m.status, m.code, m.err.Error())
		}
	}
	logging.Default().Error("request failed", err, map[string]any{
		"request_id": requestIDFromCtx(c),
		"method":     c.Method(),
		"path":       c.Path(),
	})
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
