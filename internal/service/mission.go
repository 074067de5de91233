package service

import (
	"context"
	"errors"
	"fmt"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

// ClaimResult is returned after a mission reward was credited.
type ClaimResult struct {
	Mission      model.UserMission `json:"mission"`
	Profile      model.Profile     `json:"profile"`
	RewardGold   int64             `json:"reward_gold"`
	RewardXP     int64             `json:"reward_xp"`
	LevelsGained int               `json:"levels_gained"`
}

// MissionRecorder advances missions in response to game events.
type MissionRecorder interface {
	// Record adds delta to the progress of every mission of kind.
	Record(ctx context.Context, userID string, kind model.MissionKind, delta int) ([]model.UserMission, error)
	// Sync sets the progress of every mission of kind to value.
	Sync(ctx context.Context, userID string, kind model.MissionKind, value int) ([]model.UserMission, error)
}

// MissionService lists missions, advances their progress and pays out rewards.
type MissionService interface {
	MissionRecorder

	// List returns every mission with the caller's progress; missions never touched have progress 0.
	List(ctx context.Context, userID string) ([]model.UserMission, error)

	// Claim credits the reward of a completed, unclaimed mission and levels the profile up.
	Claim(ctx context.Context, userID, missionID string) (*ClaimResult, error)
}

type missionService struct {
	repo    repository.MissionRepository
	metrics *Metrics
	log     *logging.Logger
}

// NewMissionService constructs a MissionService.
func NewMissionService(repo repository.MissionRepository, metrics *Metrics) MissionService {
	return &missionService{repo: repo, metrics: metrics, log: logging.Default()}
}

func (s *missionService) List(ctx context.Context, userID string) ([]model.UserMission, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	missions, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return missions, nil
}

func (s *missionService) Record(ctx context.Context, userID string, kind model.MissionKind, delta int) ([]model.UserMission, error) {
	return s.update(ctx, userID, kind, func(current int) int { return current + delta })
}

func (s *missionService) Sync(ctx context.Context, userID string, kind model.MissionKind, value int) ([]model.UserMission, error) {
	return s.update(ctx, userID, kind, func(int) int { return value })
}

func (s *missionService) update(ctx context.Context, userID string, kind model.MissionKind, next repository.ProgressFunc) ([]model.UserMission, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !kind.Valid() {
		return nil, ErrInvalidMissionKind
	}
	completed, err := s.repo.UpdateProgress(ctx, userID, kind, next)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("update mission progress: %w", err)
	}
	for _, m := range completed {
		s.metrics.missionCompleted(m.Kind)
		s.log.Info("mission completed", map[string]any{
			"user_id": userID,
			"mission": m.Code,
			"kind":    string(m.Kind),
		})
	}
	return completed, nil
}

func (s *missionService) Claim(ctx context.Context, userID, missionID string) (*ClaimResult, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !validID(missionID) {
		return nil, ErrMissionNotFound
	}
	out, err := s.repo.Claim(ctx, userID, missionID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrMissionNotFound
		case errors.Is(err, repository.ErrNotClaimable):
			return nil, ErrMissionNotCompleted
		case errors.Is(err, repository.ErrAlreadyClaimed):
			return nil, ErrMissionAlreadyClaimed
		}
		return nil, fmt.Errorf("claim mission: %w", err)
	}

	s.metrics.missionClaimed(out.Mission.Kind)
	s.log.Info("mission claimed", map[string]any{
		"user_id":       userID,
		"mission":       out.Mission.Code,
		"reward_gold":   out.Mission.RewardGold,
		"reward_xp":     out.Mission.RewardXP,
		"levels_gained": out.LevelsGained,
	})
	return &ClaimResult{
		Mission:      out.Mission,
		Profile:      out.Profile,
		RewardGold:   out.Mission.RewardGold,
		RewardXP:     out.Mission.RewardXP,
		LevelsGained: out.LevelsGained,
	}, nil
}
