package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

// ListMissions returns every mission with the caller's progress.
//
// @Summary Missions
// @Tags missions
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} listResponse[model.UserMission]
// @Router /me/missions [get]
func ListMissions(svc service.MissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		missions, err := svc.List(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newList(missions))
	}
}

// ClaimMission pays out a completed mission.
//
// @Summary Claim a mission reward
// @Tags missions
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Mission ID"
// @Success 200 {object} service.ClaimResult
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /me/missions/{id}/claim [post]
func ClaimMission(svc service.MissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Claim(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
