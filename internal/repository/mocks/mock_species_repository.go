package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
)

type MockSpeciesRepository struct {
	mock.Mock
}

func (m *MockSpeciesRepository) All(ctx context.Context) ([]model.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Species), args.Error(1)
}

func (m *MockSpeciesRepository) Upsert(ctx context.Context, species []model.Species) error {
	args := m.Called(ctx, species)
	return args.Error(0)
}
