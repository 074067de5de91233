package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/service"
	"pokedex/internal/storage"
)

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) ListItems(ctx context.Context, category string) ([]model.ShopItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShopItem), args.Error(1)
}

func (m *MockShopService) ItemImageURL(ctx context.Context, itemID string) (string, error) {
	args := m.Called(ctx, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockShopService) OpenItemImage(ctx context.Context, itemID string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockShopService) Purchase(ctx context.Context, userID, itemID string) (*service.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PurchaseResult), args.Error(1)
}

func (m *MockShopService) Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}

func (m *MockShopService) Equip(ctx context.Context, userID, itemID string) (*model.Profile, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockShopService) Unequip(ctx context.Context, userID, category string) (*model.Profile, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
