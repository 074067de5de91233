package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const maxTeamNameLength = 30

// TeamInput is the editable part of a team.
type TeamInput struct {
	Name    string `json:"name"`
	Members []int  `json:"members"`
}

// TeamService manages the caller's battle teams. Teams of other users are reported as not found.
type TeamService interface {
	List(ctx context.Context, userID string) ([]model.Team, error)
	Get(ctx context.Context, userID, teamID string) (*model.Team, error)
	// Create stores a new team. A user holds at most the configured number of teams.
	Create(ctx context.Context, userID string, in TeamInput) (*model.Team, error)
	// Update replaces the name and members of a team.
	Update(ctx context.Context, userID, teamID string, in TeamInput) (*model.Team, error)
	Delete(ctx context.Context, userID, teamID string) error
}

type teamService struct {
	repo     repository.TeamRepository
	maxTeams int
	missions MissionRecorder
	metrics  *Metrics
	log      *logging.Logger
	now      func() time.Time
}

// NewTeamService constructs a TeamService. maxTeams <= 0 means 10.
func NewTeamService(repo repository.TeamRepository, maxTeams int, missions MissionRecorder, metrics *Metrics) TeamService {
	if maxTeams <= 0 {
		maxTeams = 10
	}
	return &teamService{
		repo:     repo,
		maxTeams: maxTeams,
		missions: missions,
		metrics:  metrics,
		log:      logging.Default(),
		now:      time.Now,
	}
}

// validateTeam normalizes the name and checks size and member range. The same species may appear
// more than once.
func validateTeam(in TeamInput) (TeamInput, error) {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > maxTeamNameLength {
		return in, ErrInvalidTeamName
	}
	if len(in.Members) < 1 || len(in.Members) > model.MaxTeamSize {
		return in, ErrInvalidTeamSize
	}
	for _, m := range in.Members {
		if !model.ValidNationalNumber(m) {
			return in, ErrInvalidNumber
		}
	}
	return TeamInput{Name: name, Members: append([]int{}, in.Members...)}, nil
}

func (s *teamService) List(ctx context.Context, userID string) ([]model.Team, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	teams, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) Get(ctx context.Context, userID, teamID string) (*model.Team, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !validID(teamID) {
		return nil, ErrTeamNotFound
	}
	team, err := s.repo.FindByID(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return team, nil
}

func (s *teamService) Create(ctx context.Context, userID string, in TeamInput) (*model.Team, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	in, err := validateTeam(in)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	team, err := s.repo.Create(ctx, &model.Team{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      in.Name,
		Members:   in.Members,
		CreatedAt: now,
		UpdatedAt: now,
	}, s.maxTeams)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLimitReached):
			return nil, ErrTeamLimit
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("create team: %w", err)
	}

	s.metrics.teamCreated()
	if _, err := s.missions.Record(ctx, userID, model.MissionBuildTeam, 1); err != nil {
		s.log.Error("mission record failed", err, map[string]any{
			"user_id": userID,
			"kind":    string(model.MissionBuildTeam),
		})
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, userID, teamID string, in TeamInput) (*model.Team, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !validID(teamID) {
		return nil, ErrTeamNotFound
	}
	in, err := validateTeam(in)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.Update(ctx, &model.Team{
		ID:        teamID,
		UserID:    userID,
		Name:      in.Name,
		Members:   in.Members,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, userID, teamID string) error {
	if !validID(userID) {
		return ErrInvalidUserID
	}
	if !validID(teamID) {
		return ErrTeamNotFound
	}
	if err := s.repo.Delete(ctx, userID, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
