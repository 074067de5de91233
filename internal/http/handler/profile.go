package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

type usernameRequest struct {
	Username string `json:"username"`
}

// CreateProfile registers a player.
//
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param body body usernameRequest true "Username (3-20 letters, digits, underscores)"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /profiles [post]
func CreateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req usernameRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), req.Username)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetProfile returns any player's public profile.
//
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errorPayload
// @Router /profiles/{id} [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetMe returns the caller's profile.
//
// @Summary Get own profile
// @Tags me
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /me [get]
func GetMe(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateMe renames the caller.
//
// @Summary Rename own profile
// @Tags me
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param body body usernameRequest true "New username"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /me [patch]
func UpdateMe(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req usernameRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Rename(c.UserContext(), middleware.UserIDFromCtx(c), req.Username)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetHome returns the caller's gamified home summary.
//
// @Summary Home summary
// @Tags me
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} service.HomeSummary
// @Failure 404 {object} errorPayload
// @Router /me/home [get]
func GetHome(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		home, err := svc.Home(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(home)
	}
}

// GetTrainerCard renders the caller's trainer QR code.
//
// @Summary Trainer card QR code
// @Tags me
// @Produce png
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /me/trainer-card.png [get]
func GetTrainerCard(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		png, err := svc.TrainerCard(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("png")
		c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
		return c.Send(png)
	}
}

// GetLedger pages through the caller's gold movements.
//
// @Summary Gold ledger
// @Tags me
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.LedgerPage
// @Failure 400 {object} errorPayload
// @Router /me/ledger [get]
func GetLedger(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 20)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		page, err := svc.Ledger(c.UserContext(), middleware.UserIDFromCtx(c), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}
