package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokedex/internal/http/middleware"
	"pokedex/internal/service"
)

// ListShopItems returns the shop catalog.
//
// @Summary Shop items
// @Tags shop
// @Produce json
// @Param category query string false "skin | theme | badge | name_color"
// @Success 200 {object} listResponse[model.ShopItem]
// @Failure 400 {object} errorPayload
// @Router /shop/items [get]
func ListShopItems(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListItems(c.UserContext(), c.Query("category"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newList(items))
	}
}

// GetItemImage returns a short-lived download URL for an item's artwork. With raw=true the artwork
// is streamed through the API instead, for clients that cannot reach object storage.
//
// @Summary Item artwork
// @Tags shop
// @Produce json
// @Produce octet-stream
// @Param id path string true "Item ID"
// @Param raw query bool false "Stream the image bytes"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /shop/items/{id}/image [get]
func GetItemImage(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.QueryBool("raw") {
			r, info, err := svc.OpenItemImage(c.UserContext(), c.Params("id"))
			if err != nil {
				return writeServiceError(c, err)
			}
			if info.ContentType != "" {
				c.Set(fiber.HeaderContentType, info.ContentType)
			}
			if info.ETag != "" {
				c.Set(fiber.HeaderETag, info.ETag)
			}
			size := -1
			if info.Size > 0 {
				size = int(info.Size)
			}
			return c.SendStream(r, size)
		}
		url, err := svc.ItemImageURL(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// PurchaseItem buys an item with the caller's gold.
//
// @Summary Purchase an item
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Item ID"
// @Success 200 {object} service.PurchaseResult
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /shop/items/{id}/purchase [post]
func PurchaseItem(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Purchase(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListInventory returns the caller's items.
//
// @Summary Inventory
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Success 200 {object} listResponse[model.InventoryItem]
// @Router /me/inventory [get]
func ListInventory(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Inventory(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newList(items))
	}
}

// EquipItem equips an owned item.
//
// @Summary Equip an item
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param id path string true "Item ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /me/inventory/{id}/equip [post]
func EquipItem(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Equip(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UnequipCategory empties a cosmetic slot.
//
// @Summary Unequip a slot
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Caller profile ID"
// @Param category path string true "skin | theme | badge | name_color"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Router /me/equipped/{category} [delete]
func UnequipCategory(svc service.ShopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Unequip(c.UserContext(), middleware.UserIDFromCtx(c), c.Params("category"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}
