package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
)

const (
	userID = "6f1c2b7a-3d4e-4f50-8a9b-0c1d2e3f4a5b"
	itemID = "0b7e2f6c-1a2b-4c3d-9e8f-7a6b5c4d3e2f"
	teamID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func intPtr(v int) *int { return &v }

func sampleSpecies() []model.Species {
	return []model.Species{
		{Number: 1, Name: "Bulbasaur", PrimaryType: "grass", SecondaryType: "poison", Generation: 1, EvolutionChainID: 1},
		{Number: 2, Name: "Ivysaur", PrimaryType: "grass", SecondaryType: "poison", Generation: 1, EvolutionChainID: 1, EvolvesFrom: intPtr(1)},
		{Number: 3, Name: "Venusaur", PrimaryType: "grass", SecondaryType: "poison", Generation: 1, EvolutionChainID: 1, EvolvesFrom: intPtr(2)},
		{Number: 4, Name: "Charmander", PrimaryType: "fire", Generation: 1, EvolutionChainID: 2},
	}
}

// mockRecorder is a MissionRecorder test double.
type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, userID string, kind model.MissionKind, delta int) ([]model.UserMission, error) {
	args := m.Called(ctx, userID, kind, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}

func (m *mockRecorder) Sync(ctx context.Context, userID string, kind model.MissionKind, value int) ([]model.UserMission, error) {
	args := m.Called(ctx, userID, kind, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMission), args.Error(1)
}
