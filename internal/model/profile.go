package model

import "time"

// Profile is a player's gamified profile: wallet, level and equipped cosmetics.
type Profile struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Gold              int64     `json:"gold"`
	XP                int64     `json:"xp"`
	Level             int       `json:"level"`
	EquippedSkin      string    `json:"equipped_skin,omitempty"`
	EquippedTheme     string    `json:"equipped_theme,omitempty"`
	EquippedBadge     string    `json:"equipped_badge,omitempty"`
	EquippedNameColor string    `json:"equipped_name_color,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Equipped returns the item ID equipped in the slot of the given category.
func (p Profile) Equipped(c ItemCategory) string {
	switch c {
	case CategorySkin:
		return p.EquippedSkin
	case CategoryTheme:
		return p.EquippedTheme
	case CategoryBadge:
		return p.EquippedBadge
	case CategoryNameColor:
		return p.EquippedNameColor
	}
	return ""
}
