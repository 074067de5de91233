package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/repository"
)

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) ListItems(ctx context.Context, category model.ItemCategory) ([]model.ShopItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShopItem), args.Error(1)
}

func (m *MockShopRepository) FindItem(ctx context.Context, id string) (*model.ShopItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShopItem), args.Error(1)
}

func (m *MockShopRepository) UpsertItems(ctx context.Context, items []model.ShopItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockShopRepository) SetImageKey(ctx context.Context, id, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *MockShopRepository) Purchase(ctx context.Context, userID, itemID string) (*repository.PurchaseOutcome, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PurchaseOutcome), args.Error(1)
}

func (m *MockShopRepository) Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}

func (m *MockShopRepository) Equip(ctx context.Context, userID, itemID string) (*model.Profile, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockShopRepository) Unequip(ctx context.Context, userID string, category model.ItemCategory) (*model.Profile, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
