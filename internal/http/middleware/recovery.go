package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"pokedex/internal/logging"
)

// Recover turns a panicking handler into an error for the app's ErrorHandler and logs the panic
// with its stack and request_id.
func Recover(log *logging.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			rid, _ := c.Locals(RequestIDLocalKey).(string)
			log.Log(map[string]any{
				"level":      "error",
				"msg":        "panic recovered",
				"request_id": rid,
				"method":     c.Method(),
				"path":       c.Path(),
				"panic":      fmt.Sprint(e),
				"stack":      string(debug.Stack()),
			})
		},
	})
}
