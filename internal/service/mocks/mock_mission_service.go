package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/service"
)

type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) List(ctx context.Context, userID string) ([]model.UserMission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

func (m *MockMissionService) Record(ctx context.Context, userID string, kind model.MissionKind, delta int) ([]model.UserMission, error) {
	args := m.Called(ctx, userID, kind, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

func (m *MockMissionService) Sync(ctx context.Context, userID string, kind model.MissionKind, value int) ([]model.UserMission, error) {
	args := m.Called(ctx, userID, kind, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

func (m *MockMissionService) Claim(ctx context.Context, userID, missionID string) (*service.ClaimResult, error) {
	args := m.Called(ctx, userID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClaimResult), args.Error(1)
}
