package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

// Services groups the use cases the HTTP layer depends on.
type Services struct {
	Catalog  service.CatalogService
	Profiles service.ProfileService
	Dex      service.DexService
	Missions service.MissionService
	Shop     service.ShopService
	Teams    service.TeamService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Caller routes require X-User-ID; catalog routes read it when present.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	optionalUser := middleware.OptionalUser()
	user := middleware.RequireUser()

	app.Get("/pokemon", optionalUser, ListPokemon(svc.Catalog))
	app.Get("/pokemon/:number", GetPokemon(svc.Catalog))
	app.Get("/pokemon/:number/evolution", GetEvolution(svc.Catalog))

	app.Post("/profiles", CreateProfile(svc.Profiles))
	app.Get("/profiles/:id", GetProfile(svc.Profiles))

	app.Get("/shop/items", ListShopItems(svc.Shop))
	app.Get("/shop/items/:id/image", GetItemImage(svc.Shop))
	app.Post("/shop/items/:id/purchase", user, PurchaseItem(svc.Shop))

	me := app.Group("/me")
	me.Get("", user, GetMe(svc.Profiles))
	me.Patch("", user, UpdateMe(svc.Profiles))
	me.Get("/home", user, GetHome(svc.Profiles))
	me.Get("/trainer-card.png", user, GetTrainerCard(svc.Profiles))
	me.Get("/ledger", user, GetLedger(svc.Profiles))

	me.Get("/dex", user, GetDex(svc.Dex))
	me.Post("/dex", user, MarkDexBulk(svc.Dex))
	me.Put("/dex/:number", user, MarkDex(svc.Dex))
	me.Delete("/dex/:number", user, UnmarkDex(svc.Dex))

	me.Get("/missions", user, ListMissions(svc.Missions))
	me.Post("/missions/:id/claim", user, ClaimMission(svc.Missions))

	me.Get("/inventory", user, ListInventory(svc.Shop))
	me.Post("/inventory/:id/equip", user, EquipItem(svc.Shop))
	me.Delete("/equipped/:category", user, UnequipCategory(svc.Shop))

	me.Get("/teams", user, ListTeams(svc.Teams))
	me.Post("/teams", user, CreateTeam(svc.Teams))
	me.Get("/teams/:id", user, GetTeam(svc.Teams))
	me.Put("/teams/:id", user, UpdateTeam(svc.Teams))
	me.Delete("/teams/:id", user, DeleteTeam(svc.Teams))
}
