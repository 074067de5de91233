package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

type bulkMarkRequest struct {
	Numbers []int `json:"numbers"`
}

// GetDex returns the caller's Living Dex.
//
// @Summary Living Dex
// @Tags dex
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} service.LivingDex
// @Router /me/dex [get]
func GetDex(svc service.DexService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dex, err := svc.Owned(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dex)
	}
}

// MarkDex marks a species as owned. Idempotent.
//
// @Summary Mark owned
// @Tags dex
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param number path int true "National number"
// @Success 200 {object} service.LivingDex
// @Failure 400 {object} errorPayload
// @Router /me/dex/{number} [put]
func MarkDex(svc service.DexService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, ok := paramNumber(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUMBER", "invalid national number")
		}
		dex, err := svc.Mark(c.UserContext(), middleware.UserIDFromCtx(c), n)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dex)
	}
}

// UnmarkDex removes a species from the Living Dex. Idempotent.
//
// @Summary Unmark owned
// @Tags dex
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param number path int true "National number"
// @Success 200 {object} service.LivingDex
// @Failure 400 {object} errorPayload
// @Router /me/dex/{number} [delete]
func UnmarkDex(svc service.DexService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, ok := paramNumber(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUMBER", "invalid national number")
		}
		dex, err := svc.Unmark(c.UserContext(), middleware.UserIDFromCtx(c), n)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dex)
	}
}

// MarkDexBulk marks many species as owned at once.
//
// @Summary Bulk mark owned
// @Tags dex
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param body body bulkMarkRequest true "National numbers"
// @Success 200 {object} service.LivingDex
// @Failure 400 {object} errorPayload
// @Router /me/dex [post]
func MarkDexBulk(svc service.DexService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req bulkMarkRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		dex, err := svc.MarkBulk(c.UserContext(), middleware.UserIDFromCtx(c), req.Numbers)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dex)
	}
}
