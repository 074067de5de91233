package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/repository"
)

type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) ListForUser(ctx context.Context, userID string) ([]model.UserMission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

// UpdateProgress records the call. If the first return value is a func(repository.ProgressFunc),
// it is invoked with next so tests can inspect the progress rule.
func (m *MockMissionRepository) UpdateProgress(ctx context.Context, userID string, kind model.MissionKind, next repository.ProgressFunc) ([]model.UserMission, error) {
	args := m.Called(ctx, userID, kind, next)
	if f, ok := args.Get(0).(func(repository.ProgressFunc) []model.UserMission); ok {
		return f(next), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

func (m *MockMissionRepository) Claim(ctx context.Context, userID, missionID string) (*repository.ClaimOutcome, error) {
	args := m.Called(ctx, userID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ClaimOutcome), args.Error(1)
}

func (m *MockMissionRepository) Upsert(ctx context.Context, missions []model.Mission) error {
	args := m.Called(ctx, missions)
	return args.Error(0)
}
