package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
	"pokedex/internal/service"
)

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) List(ctx context.Context, userID string) ([]model.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockTeamService) Get(ctx context.Context, userID, teamID string) (*model.Team, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) Create(ctx context.Context, userID string, in service.TeamInput) (*model.Team, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, userID, teamID string, in service.TeamInput) (*model.Team, error) {
	args := m.Called(ctx, userID, teamID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, userID, teamID string) error {
	args := m.Called(ctx, userID, teamID)
	return args.Error(0)
}
