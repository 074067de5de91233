package model

import "time"

// ItemCategory is the cosmetic slot a shop item occupies.
type ItemCategory string

const (
	CategorySkin      ItemCategory = "skin"
	CategoryTheme     ItemCategory = "theme"
	CategoryBadge     ItemCategory = "badge"
	CategoryNameColor ItemCategory = "name_color"
)

// Valid reports whether c is a known category.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategorySkin, CategoryTheme, CategoryBadge, CategoryNameColor:
		return true
	}
	return false
}

// ShopItem is a cosmetic purchasable with gold.
type ShopItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Price       int64        `json:"price"`
	Description string       `json:"description,omitempty"`
	ImageKey    string       `json:"image_key,omitempty"`
}

// InventoryItem is a shop item owned by a user.
type InventoryItem struct {
	Item       ShopItem  `json:"item"`
	AcquiredAt time.Time `json:"acquired_at"`
	Equipped   bool      `json:"equipped"`
}
