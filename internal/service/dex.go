package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

// GenerationProgress is Living Dex completion inside one generation.
type GenerationProgress struct {
	Generation int     `json:"generation"`
	Owned      int     `json:"owned"`
	Total      int     `json:"total"`
	Percent    float64 `json:"percent"`
}

// DexProgress is Living Dex completion overall and per generation.
type DexProgress struct {
	Owned       int                  `json:"owned"`
	Total       int                  `json:"total"`
	Percent     float64              `json:"percent"`
	Generations []GenerationProgress `json:"generations"`
}

// LivingDex is a user's owned national numbers with completion figures.
type LivingDex struct {
	Numbers  []int       `json:"numbers"`
	Progress DexProgress `json:"progress"`
}

// DexService tracks which species a user owns.
type DexService interface {
	// Owned returns the caller's owned numbers in ascending order plus progress.
	Owned(ctx context.Context, userID string) (*LivingDex, error)

	// Mark records ownership of number. Marking an owned number is a no-op.
	Mark(ctx context.Context, userID string, number int) (*LivingDex, error)

	// MarkBulk records ownership of every number. Duplicates are ignored; one invalid number rejects
	// the whole request.
	MarkBulk(ctx context.Context, userID string, numbers []int) (*LivingDex, error)

	// Unmark removes ownership of number. Unmarking a missing number is a no-op.
	Unmark(ctx context.Context, userID string, number int) (*LivingDex, error)
}

type dexService struct {
	repo     repository.DexRepository
	missions MissionRecorder
	metrics  *Metrics
	log      *logging.Logger
}

// NewDexService constructs a DexService.
func NewDexService(repo repository.DexRepository, missions MissionRecorder, metrics *Metrics) DexService {
	return &dexService{repo: repo, missions: missions, metrics: metrics, log: logging.Default()}
}

func (s *dexService) Owned(ctx context.Context, userID string) (*LivingDex, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	numbers, err := s.repo.Owned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load owned: %w", err)
	}
	return newLivingDex(numbers), nil
}

func (s *dexService) Mark(ctx context.Context, userID string, number int) (*LivingDex, error) {
	return s.MarkBulk(ctx, userID, []int{number})
}

func (s *dexService) MarkBulk(ctx context.Context, userID string, numbers []int) (*LivingDex, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if len(numbers) == 0 {
		return nil, ErrInvalidNumber
	}
	seen := make(map[int]bool, len(numbers))
	unique := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if !model.ValidNationalNumber(n) {
			return nil, ErrInvalidNumber
		}
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	sort.Ints(unique)

	added, err := s.repo.Mark(ctx, userID, unique)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("mark owned: %w", err)
	}
	s.metrics.dexMarked(added)
	return s.afterChange(ctx, userID, added > 0)
}

func (s *dexService) Unmark(ctx context.Context, userID string, number int) (*LivingDex, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	if !model.ValidNationalNumber(number) {
		return nil, ErrInvalidNumber
	}
	if err := s.repo.Unmark(ctx, userID, number); err != nil {
		return nil, fmt.Errorf("unmark owned: %w", err)
	}
	return s.afterChange(ctx, userID, true)
}

// afterChange reloads the dex and, when it changed, syncs own_pokemon missions to the new count.
func (s *dexService) afterChange(ctx context.Context, userID string, changed bool) (*LivingDex, error) {
	dex, err := s.Owned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if changed {
		if _, err := s.missions.Sync(ctx, userID, model.MissionOwnPokemon, dex.Progress.Owned); err != nil {
			s.log.Error("mission sync failed", err, map[string]any{
				"user_id": userID,
				"kind":    string(model.MissionOwnPokemon),
			})
		}
	}
	return dex, nil
}

func newLivingDex(numbers []int) *LivingDex {
	sorted := append([]int{}, numbers...)
	sort.Ints(sorted)
	return &LivingDex{Numbers: sorted, Progress: dexProgress(sorted)}
}

func dexProgress(numbers []int) DexProgress {
	perGen := make([]int, model.GenerationCount()+1)
	owned := 0
	for _, n := range numbers {
		if g := model.GenerationOf(n); g > 0 {
			perGen[g]++
			owned++
		}
	}

	p := DexProgress{
		Owned:       owned,
		Total:       model.MaxNationalNumber,
		Percent:     percent(owned, model.MaxNationalNumber),
		Generations: make([]GenerationProgress, 0, model.GenerationCount()),
	}
	for g := 1; g <= model.GenerationCount(); g++ {
		total := model.GenerationSize(g)
		p.Generations = append(p.Generations, GenerationProgress{
			Generation: g,
			Owned:      perGen[g],
			Total:      total,
			Percent:    percent(perGen[g], total),
		})
	}
	return p
}

// percent returns part/total as a percentage truncated to two decimals.
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part*10000/total) / 100
}
