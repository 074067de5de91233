package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDexRepository struct {
	mock.Mock
}

func (m *MockDexRepository) Owned(ctx context.Context, userID string) ([]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockDexRepository) Mark(ctx context.Context, userID string, numbers []int) (int, error) {
	args := m.Called(ctx, userID, numbers)
	return args.Int(0), args.Error(1)
}

func (m *MockDexRepository) Unmark(ctx context.Context, userID string, number int) error {
	args := m.Called(ctx, userID, number)
	return args.Error(0)
}
