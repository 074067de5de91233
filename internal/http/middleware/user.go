package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// UserIDHeader carries the caller's profile ID, set by the upstream gateway.
	UserIDHeader = "X-User-ID"
	// UserIDLocalKey is the locals key holding the normalized caller ID.
	UserIDLocalKey = "user_id"
)

// RequireUser rejects requests without a valid X-User-ID.
func RequireUser() fiber.Handler {
	return identify(true)
}

// OptionalUser reads X-User-ID when present. A malformed value is still rejected.
func OptionalUser() fiber.Handler {
	return identify(false)
}

func identify(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserIDHeader)
		if raw == "" {
			if required {
				return reject(c, fiber.StatusUnauthorized, "USER_REQUIRED", "X-User-ID header is required")
			}
			return c.Next()
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return reject(c, fiber.StatusBadRequest, "INVALID_USER_ID", "X-User-ID must be a UUID")
		}
		c.Locals(UserIDLocalKey, id.String())
		return c.Next()
	}
}

// UserIDFromCtx returns the caller ID stored by RequireUser or OptionalUser, or "".
func UserIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}

// reject writes the standard error envelope.
func reject(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}
