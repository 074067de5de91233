package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// listResponse wraps collections as {"data": [...]}.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items}
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// paramNumber parses the :number path parameter.
func paramNumber(c *fiber.Ctx) (int, bool) {
	n, err := strconv.Atoi(c.Params("number"))
	return n, err == nil
}
