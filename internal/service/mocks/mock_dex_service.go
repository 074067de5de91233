package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/service"
)

type MockDexService struct {
	mock.Mock
}

func (m *MockDexService) Owned(ctx context.Context, userID string) (*service.LivingDex, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LivingDex), args.Error(1)
}

func (m *MockDexService) Mark(ctx context.Context, userID string, number int) (*service.LivingDex, error) {
	args := m.Called(ctx, userID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LivingDex), args.Error(1)
}

func (m *MockDexService) MarkBulk(ctx context.Context, userID string, numbers []int) (*service.LivingDex, error) {
	args := m.Called(ctx, userID, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LivingDex), args.Error(1)
}

func (m *MockDexService) Unmark(ctx context.Context, userID string, number int) (*service.LivingDex, error) {
	args := m.Called(ctx, userID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LivingDex), args.Error(1)
}
