package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const (
	trainerCardSize   = 256
	defaultLedgerSize = 20
	maxLedgerSize     = 100
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// HomeSummary is the gamified home screen of a player.
type HomeSummary struct {
	Profile           model.Profile `json:"profile"`
	XPToNextLevel     int64         `json:"xp_to_next_level"`
	LevelProgress     float64       `json:"level_progress"`
	Dex               DexProgress   `json:"dex"`
	ClaimableMissions int           `json:"claimable_missions"`
	Teams             int           `json:"teams"`
	InventoryItems    int           `json:"inventory_items"`
}

// LedgerPage is a page of gold movements, newest first.
type LedgerPage struct {
	Items  []model.LedgerEntry `json:"data"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// ProfileService manages player profiles and their summary views.
type ProfileService interface {
	// Create registers a player with the starting gold at level 1.
	Create(ctx context.Context, username string) (*model.Profile, error)
	Get(ctx context.Context, id string) (*model.Profile, error)
	Rename(ctx context.Context, id, username string) (*model.Profile, error)

	// Home aggregates the profile with dex, mission, team and inventory figures.
	Home(ctx context.Context, id string) (*HomeSummary, error)

	// TrainerCard renders a PNG QR code that identifies the player.
	TrainerCard(ctx context.Context, id string) ([]byte, error)

	// Ledger pages through the player's gold movements.
	Ledger(ctx context.Context, id string, limit, offset int) (*LedgerPage, error)
}

type profileService struct {
	profiles     repository.ProfileRepository
	dex          repository.DexRepository
	missions     repository.MissionRepository
	teams        repository.TeamRepository
	shop         repository.ShopRepository
	startingGold int64
	log          *logging.Logger
	now          func() time.Time
}

// NewProfileService constructs a ProfileService.
func NewProfileService(
	profiles repository.ProfileRepository,
	dex repository.DexRepository,
	missions repository.MissionRepository,
	teams repository.TeamRepository,
	shop repository.ShopRepository,
	startingGold int64,
) ProfileService {
	if startingGold < 0 {
		startingGold = 0
	}
	return &profileService{
		profiles:     profiles,
		dex:          dex,
		missions:     missions,
		teams:        teams,
		shop:         shop,
		startingGold: startingGold,
		log:          logging.Default(),
		now:          time.Now,
	}
}

// TrainerURI is the payload encoded in a trainer card.
func TrainerURI(id string) string {
	return "pokedex://trainer/" + id
}

func (s *profileService) Create(ctx context.Context, username string) (*model.Profile, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	p, err := s.profiles.Create(ctx, &model.Profile{
		ID:        uuid.NewString(),
		Username:  username,
		Gold:      s.startingGold,
		Level:     1,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.Info("profile created", map[string]any{"user_id": p.ID, "username": p.Username})
	return p, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	if !validID(id) {
		return nil, ErrProfileNotFound
	}
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Rename(ctx context.Context, id, username string) (*model.Profile, error) {
	if !validID(id) {
		return nil, ErrProfileNotFound
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	p, err := s.profiles.UpdateUsername(ctx, id, username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProfileNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("rename profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Home(ctx context.Context, id string) (*HomeSummary, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owned, err := s.dex.Owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load owned: %w", err)
	}
	missions, err := s.missions.ListForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	teams, err := s.teams.Count(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count teams: %w", err)
	}
	inventory, err := s.shop.Inventory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	claimable := 0
	for _, m := range missions {
		if m.Claimable() {
			claimable++
		}
	}

	return &HomeSummary{
		Profile:           *p,
		XPToNextLevel:     xpRemaining(p.Level, p.XP),
		LevelProgress:     model.LevelProgress(p.Level, p.XP),
		Dex:               dexProgress(owned),
		ClaimableMissions: claimable,
		Teams:             teams,
		InventoryItems:    len(inventory),
	}, nil
}

// xpRemaining is the XP still needed for the next level; 0 at the cap.
func xpRemaining(level int, xp int64) int64 {
	if level >= model.MaxLevel {
		return 0
	}
	if left := model.XPToNext(level) - xp; left > 0 {
		return left
	}
	return 0
}

func (s *profileService) TrainerCard(ctx context.Context, id string) ([]byte, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(TrainerURI(p.ID), qrcode.Medium, trainerCardSize)
	if err != nil {
		return nil, fmt.Errorf("encode trainer card: %w", err)
	}
	return png, nil
}

func (s *profileService) Ledger(ctx context.Context, id string, limit, offset int) (*LedgerPage, error) {
	if !validID(id) {
		return nil, ErrProfileNotFound
	}
	if limit <= 0 {
		limit = defaultLedgerSize
	}
	if limit > maxLedgerSize {
		limit = maxLedgerSize
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.profiles.Ledger(ctx, id, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return &LedgerPage{Items: res.Items, Total: res.Total, Limit: limit, Offset: offset}, nil
}
