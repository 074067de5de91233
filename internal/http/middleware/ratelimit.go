package middleware

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pokedex/internal/cache"
)

// Limiter decides whether a caller may proceed.
type Limiter interface {
	Allow(ctx context.Context, userID, ip string) *cache.RateLimitResult
}

// RateLimit throttles callers by user ID, falling back to the client IP. Place it after
// OptionalUser or RequireUser so the user ID is known.
func RateLimit(l Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		res := l.Allow(c.UserContext(), UserIDFromCtx(c), c.IP())
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		if !res.Allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(res.RetryAfter.Seconds())))
			return reject(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
		}
		return c.Next()
	}
}
