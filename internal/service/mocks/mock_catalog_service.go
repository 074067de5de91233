package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/pokedex"
	"pokedex/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, userID string, q pokedex.Query) (*pokedex.Page[pokedex.Entry], error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokedex.Page[pokedex.Entry]), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, number int) (*model.Species, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Species), args.Error(1)
}

func (m *MockCatalogService) Evolution(ctx context.Context, number int) (*service.EvolutionResult, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EvolutionResult), args.Error(1)
}

func (m *MockCatalogService) All(ctx context.Context) ([]model.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Species), args.Error(1)
}

func (m *MockCatalogService) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
