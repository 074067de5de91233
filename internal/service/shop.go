package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository"
	"pokedex/internal/storage"
)

// PurchaseResult is returned after a successful purchase.
type PurchaseResult struct {
	Item    model.ShopItem `json:"item"`
	Profile model.Profile  `json:"profile"`
}

// ShopService sells cosmetics for gold and manages what the player has equipped.
type ShopService interface {
	// ListItems returns the shop catalog, optionally restricted to one category.
	ListItems(ctx context.Context, category string) ([]model.ShopItem, error)

	// ItemImageURL returns a time-limited download URL for the item's artwork.
	ItemImageURL(ctx context.Context, itemID string) (string, error)

	// OpenItemImage streams the item's artwork. The caller closes the reader.
	OpenItemImage(ctx context.Context, itemID string) (io.ReadCloser, storage.ObjectInfo, error)

	// Purchase buys an item: it must not be owned yet and the caller's gold must cover its price.
	Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error)

	// Inventory lists the caller's items with their equipped state.
	Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error)

	// Equip puts an owned item into the profile slot of its category, replacing what was there.
	Equip(ctx context.Context, userID, itemID string) (*model.Profile, error)

	// Unequip empties the profile slot of a category.
	Unequip(ctx context.Context, userID, category string) (*model.Profile, error)
}

type shopService struct {
	repo       repository.ShopRepository
	profiles   repository.ProfileRepository
	store      storage.Storage
	presignTTL time.Duration
	missions   MissionRecorder
	metrics    *Metrics
	log        *logging.Logger
}

// NewShopService constructs a ShopService. store may be nil when object storage is not configured.
func NewShopService(
	repo repository.ShopRepository,
	profiles repository.ProfileRepository,
	store storage.Storage,
	presignTTL time.Duration,
	missions MissionRecorder,
	metrics *Metrics,
) ShopService {
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}
	return &shopService{
		repo:       repo,
		profiles:   profiles,
		store:      store,
		presignTTL: presignTTL,
		missions:   missions,
		metrics:    metrics,
		log:        logging.Default(),
	}
}

func (s *shopService) ListItems(ctx context.Context, category string) ([]model.ShopItem, error) {
	c := model.ItemCategory(category)
	if category != "" && !c.Valid() {
		return nil, ErrInvalidCategory
	}
	items, err := s.repo.ListItems(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *shopService) ItemImageURL(ctx context.Context, itemID string) (string, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	if s.store == nil || item.ImageKey == "" {
		return "", ErrImageUnavailable
	}
	url, err := s.store.PresignGet(ctx, item.ImageKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("presign artwork: %w", err)
	}
	return url, nil
}

func (s *shopService) OpenItemImage(ctx context.Context, itemID string) (io.ReadCloser, storage.ObjectInfo, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if s.store == nil || item.ImageKey == "" {
		return nil, storage.ObjectInfo{}, ErrImageUnavailable
	}
	r, info, err := s.store.Get(ctx, item.ImageKey)
	if err != nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("open artwork: %w", err)
	}
	return r, info, nil
}

func (s *shopService) Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !validID(itemID) {
		return nil, ErrItemNotFound
	}
	out, err := s.repo.Purchase(ctx, userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repository.ErrAlreadyOwned):
			return nil, ErrAlreadyOwned
		case errors.Is(err, repository.ErrInsufficientGold):
			return nil, ErrInsufficientGold
		}
		return nil, fmt.Errorf("purchase: %w", err)
	}

	s.metrics.purchase(out.Item)
	s.log.Info("item purchased", map[string]any{
		"user_id": userID,
		"item_id": out.Item.ID,
		"price":   out.Item.Price,
		"gold":    out.Profile.Gold,
	})
	s.recordMission(ctx, userID, model.MissionPurchase)
	return &PurchaseResult{Item: out.Item, Profile: out.Profile}, nil
}

func (s *shopService) Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	items, err := s.repo.Inventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	for i := range items {
		items[i].Equipped = profile.Equipped(items[i].Item.Category) == items[i].Item.ID
	}
	return items, nil
}

func (s *shopService) Equip(ctx context.Context, userID, itemID string) (*model.Profile, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !validID(itemID) {
		return nil, ErrItemNotFound
	}
	profile, err := s.repo.Equip(ctx, userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repository.ErrNotOwned):
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("equip: %w", err)
	}
	s.recordMission(ctx, userID, model.MissionEquip)
	return profile, nil
}

func (s *shopService) Unequip(ctx context.Context, userID, category string) (*model.Profile, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	c := model.ItemCategory(category)
	if !c.Valid() {
		return nil, ErrInvalidCategory
	}
	profile, err := s.repo.Unequip(ctx, userID, c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("unequip: %w", err)
	}
	return profile, nil
}

func (s *shopService) findItem(ctx context.Context, itemID string) (*model.ShopItem, error) {
	if !validID(itemID) {
		return nil, ErrItemNotFound
	}
	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

// recordMission advances missions after a committed action. Failures are logged only.
func (s *shopService) recordMission(ctx context.Context, userID string, kind model.MissionKind) {
	if _, err := s.missions.Record(ctx, userID, kind, 1); err != nil {
		s.log.Error("mission record failed", err, map[string]any{"user_id": userID, "kind": string(kind)})
	}
}
