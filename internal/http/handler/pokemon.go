package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/pokedex"
	"pokedex/internal/service"
)

// ListPokemon browses the National Pokédex.
//
// @Summary Browse the catalog
// @Description Filters by name or number (search), type and generation, sorts by number, name or type ("-" prefix for descending) and paginates. With X-User-ID, entries carry ownership and "owned" filters on it.
// @Tags pokemon
// @Produce json
// @Param search query string false "Name substring or national number (#25)"
// @Param type query string false "Either type slot"
// @Param generation query int false "Generation 1-9"
// @Param owned query bool false "Owned by caller"
// @Param sort query string false "number | name | type, optional '-' prefix"
// @Param page query int false "1-based page"
// @Param page_size query int false "Page size (max 100)"
// @Param X-User-ID header string false "Caller profile ID"
// @Success 200 {object} pokedex.Page[pokedex.Entry]
// @Failure 400 {object} errorPayload
// @Router /pokemon [get]
func ListPokemon(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := pokedex.Query{
			Search: c.Query("search"),
			Type:   c.Query("type"),
			Sort:   c.Query("sort"),
		}
		var err error
		if q.Generation, err = queryInt(c, "generation", 0); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_GENERATION", "invalid generation")
		}
		if q.Page, err = queryInt(c, "page", 1); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		if q.PageSize, err = queryInt(c, "page_size", pokedex.DefaultPageSize); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_SIZE", "invalid page_size")
		}
		if raw := c.Query("owned"); raw != "" {
			owned, err := strconv.ParseBool(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_OWNED", "invalid owned")
			}
			q.Owned = &owned
		}

		page, err := svc.List(c.UserContext(), middleware.UserIDFromCtx(c), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetPokemon returns one species.
//
// @Summary Get a species
// @Tags pokemon
// @Produce json
// @Param number path int true "National number"
// @Success 200 {object} model.Species
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pokemon/{number} [get]
func GetPokemon(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, ok := paramNumber(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUMBER", "invalid national number")
		}
		sp, err := svc.Get(c.UserContext(), n)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sp)
	}
}

// GetEvolution returns the evolution tree containing a species.
//
// @Summary Get an evolution chain
// @Tags pokemon
// @Produce json
// @Param number path int true "National number"
// @Success 200 {object} service.EvolutionResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pokemon/{number}/evolution [get]
func GetEvolution(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, ok := paramNumber(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUMBER", "invalid national number")
		}
		res, err := svc.Evolution(c.UserContext(), n)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
