// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and hold no game rules beyond what must run
// inside a single transaction.
package repository

import (
	"context"
	"errors"

	"pokedex/internal/model"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrAlreadyOwned     = errors.New("item already owned")
	ErrNotOwned         = errors.New("item not owned")
	ErrNotClaimable     = errors.New("mission not completed")
	ErrAlreadyClaimed   = errors.New("mission reward already claimed")
	ErrLimitReached     = errors.New("limit reached")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// SpeciesRepository reads and seeds the National Pokédex catalog.
type SpeciesRepository interface {
	// All returns every species ordered by national number.
	All(ctx context.Context) ([]model.Species, error)
	// Upsert inserts or replaces species rows keyed by national number.
	Upsert(ctx context.Context, species []model.Species) error
}

// ProfileRepository persists player profiles and their gold ledger.
type ProfileRepository interface {
	// Create inserts a profile and, when it starts with gold, the matching ledger entry.
	// Returns ErrDuplicate when the username is taken.
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	UpdateUsername(ctx context.Context, id, username string) (*model.Profile, error)
	Ledger(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.LedgerEntry], error)
}

// DexRepository stores Living Dex ownership marks.
type DexRepository interface {
	// Owned returns the user's owned national numbers in ascending order.
	Owned(ctx context.Context, userID string) ([]int, error)
	// Mark records ownership of numbers, ignoring ones already owned, and returns how many were new.
	Mark(ctx context.Context, userID string, numbers []int) (int, error)
	// Unmark removes an ownership mark. Missing marks are not an error.
	Unmark(ctx context.Context, userID string, number int) error
}

// ProgressFunc maps a mission's current progress to its next value.
type ProgressFunc func(current int) int

// ClaimOutcome is the state after a reward was credited.
type ClaimOutcome struct {
	Mission      model.UserMission
	Profile      model.Profile
	LevelsGained int
}

// MissionRepository stores mission definitions and per-user progress.
type MissionRepository interface {
	ListForUser(ctx context.Context, userID string) ([]model.UserMission, error)
	// UpdateProgress applies next to every mission of kind for the user inside one transaction.
	// Progress is clamped to [0, target] and completion is stamped once.
	UpdateProgress(ctx context.Context, userID string, kind model.MissionKind, next ProgressFunc) ([]model.UserMission, error)
	// Claim marks a completed mission claimed and credits its reward atomically.
	Claim(ctx context.Context, userID, missionID string) (*ClaimOutcome, error)
	Upsert(ctx context.Context, missions []model.Mission) error
}

// PurchaseOutcome is the state after a successful purchase.
type PurchaseOutcome struct {
	Item    model.ShopItem
	Profile model.Profile
}

// ShopRepository stores the shop catalog and each user's inventory.
type ShopRepository interface {
	// ListItems returns items of the category, or all items when category is empty.
	ListItems(ctx context.Context, category model.ItemCategory) ([]model.ShopItem, error)
	FindItem(ctx context.Context, id string) (*model.ShopItem, error)
	UpsertItems(ctx context.Context, items []model.ShopItem) error
	SetImageKey(ctx context.Context, id, key string) error
	// Purchase spends gold and adds the item to the inventory atomically.
	Purchase(ctx context.Context, userID, itemID string) (*PurchaseOutcome, error)
	Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error)
	// Equip sets the profile slot for the item's category. The item must be owned.
	Equip(ctx context.Context, userID, itemID string) (*model.Profile, error)
	// Unequip clears the profile slot for category.
	Unequip(ctx context.Context, userID string, category model.ItemCategory) (*model.Profile, error)
}

// TeamRepository stores battle teams. Every lookup is scoped to the owning user.
type TeamRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Team, error)
	FindByID(ctx context.Context, userID, id string) (*model.Team, error)
	Count(ctx context.Context, userID string) (int, error)
	// Create inserts a team unless the user already holds max teams (ErrLimitReached). The check
	// and the insert run under a lock on the owner's profile row.
	Create(ctx context.Context, team *model.Team, max int) (*model.Team, error)
	Update(ctx context.Context, team *model.Team) (*model.Team, error)
	Delete(ctx context.Context, userID, id string) error
}
