package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

// ListTeams returns the caller's battle teams.
//
// @Summary Teams
// @Tags teams
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} listResponse[model.Team]
// @Router /me/teams [get]
func ListTeams(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teams, err := svc.List(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newList(teams))
	}
}

// GetTeam returns one of the caller's teams.
//
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} errorPayload
// @Router /me/teams/{id} [get]
func GetTeam(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		team, err := svc.Get(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(team)
	}
}

// CreateTeam stores a new team.
//
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param body body service.TeamInput true "Name and 1-6 national numbers"
// @Success 201 {object} model.Team
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /me/teams [post]
func CreateTeam(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TeamInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		team, err := svc.Create(c.UserContext(), middleware.UserIDFromCtx(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(team)
	}
}

// UpdateTeam replaces a team's name and members.
//
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Team ID"
// @Param body body service.TeamInput true "Name and 1-6 national numbers"
// @Success 200 {object} model.Team
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /me/teams/{id} [put]
func UpdateTeam(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TeamInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		team, err := svc.Update(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(team)
	}
}

// DeleteTeam removes a team.
//
// @Summary Delete a team
// @Tags teams
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Team ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /me/teams/{id} [delete]
func DeleteTeam(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
