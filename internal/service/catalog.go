package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/pokedex"
	"pokedex/internal/repository"
)

// CatalogCache is a shared cache for the species list. Any error from GetSpecies is a miss.
type CatalogCache interface {
	GetSpecies(ctx context.Context) ([]model.Species, error)
	SetSpecies(ctx context.Context, species []model.Species) error
	InvalidateSpecies(ctx context.Context) error
}

// EvolutionResult is an evolution tree together with its breadth-first stages.
type EvolutionResult struct {
	Chain  *pokedex.EvolutionNode `json:"chain"`
	Stages []pokedex.Stage        `json:"stages"`
}

// CatalogService serves the read-only National Pokédex catalog.
type CatalogService interface {
	// List filters, sorts and paginates the catalog. When userID is set, entries carry the caller's
	// Living Dex ownership and q.Owned can filter on it.
	List(ctx context.Context, userID string, q pokedex.Query) (*pokedex.Page[pokedex.Entry], error)

	// Get returns a single species by national number.
	Get(ctx context.Context, number int) (*model.Species, error)

	// Evolution returns the evolution tree that contains number.
	Evolution(ctx context.Context, number int) (*EvolutionResult, error)

	// All returns the whole catalog ordered by national number. Callers must not modify it.
	All(ctx context.Context) ([]model.Species, error)

	// Invalidate drops the in-memory copy and the shared cache entry.
	Invalidate(ctx context.Context) error
}

type catalogService struct {
	repo  repository.SpeciesRepository
	dex   repository.DexRepository
	cache CatalogCache
	ttl   time.Duration
	log   *logging.Logger
	now   func() time.Time

	mu       sync.RWMutex
	species  []model.Species
	loadedAt time.Time
}

// NewCatalogService constructs a CatalogService. cache may be nil. The in-memory copy is refreshed
// after ttl; a non-positive ttl keeps it until Invalidate.
func NewCatalogService(repo repository.SpeciesRepository, dex repository.DexRepository, cache CatalogCache, ttl time.Duration) CatalogService {
	return &catalogService{
		repo:  repo,
		dex:   dex,
		cache: cache,
		ttl:   ttl,
		log:   logging.Default(),
		now:   time.Now,
	}
}

func (s *catalogService) All(ctx context.Context) ([]model.Species, error) {
	s.mu.RLock()
	if s.fresh() {
		species := s.species
		s.mu.RUnlock()
		return species, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fresh() {
		return s.species, nil
	}

	species, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(species) > 0 {
		s.species = species
		s.loadedAt = s.now()
	}
	return species, nil
}

// fresh must be called with mu held.
func (s *catalogService) fresh() bool {
	if len(s.species) == 0 {
		return false
	}
	return s.ttl <= 0 || s.now().Sub(s.loadedAt) < s.ttl
}

func (s *catalogService) load(ctx context.Context) ([]model.Species, error) {
	if s.cache != nil {
		species, err := s.cache.GetSpecies(ctx)
		if err == nil && len(species) > 0 {
			return species, nil
		}
	}

	species, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}
	sort.SliceStable(species, func(i, j int) bool { return species[i].Number < species[j].Number })

	if s.cache != nil && len(species) > 0 {
		if err := s.cache.SetSpecies(ctx, species); err != nil {
			s.log.Warn("catalog cache write failed", map[string]any{"error": err.Error()})
		}
	}
	return species, nil
}

func (s *catalogService) List(ctx context.Context, userID string, q pokedex.Query) (*pokedex.Page[pokedex.Entry], error) {
	species, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var owned map[int]bool
	if userID != "" {
		if !validID(userID) {
			return nil, ErrInvalidUserID
		}
		numbers, err := s.dex.Owned(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load owned: %w", err)
		}
		owned = make(map[int]bool, len(numbers))
		for _, n := range numbers {
			owned[n] = true
		}
	}

	page, err := pokedex.Run(species, q, owned)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *catalogService) Get(ctx context.Context, number int) (*model.Species, error) {
	if !model.ValidNationalNumber(number) {
		return nil, ErrSpeciesNotFound
	}
	species, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	i := sort.Search(len(species), func(i int) bool { return species[i].Number >= number })
	if i == len(species) || species[i].Number != number {
		return nil, ErrSpeciesNotFound
	}
	sp := species[i]
	return &sp, nil
}

func (s *catalogService) Evolution(ctx context.Context, number int) (*EvolutionResult, error) {
	species, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	root, err := pokedex.BuildEvolutionChain(species, number)
	if err != nil {
		if errors.Is(err, pokedex.ErrSpeciesNotFound) {
			return nil, ErrSpeciesNotFound
		}
		return nil, err
	}
	return &EvolutionResult{Chain: root, Stages: pokedex.Flatten(root)}, nil
}

func (s *catalogService) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.species = nil
	s.loadedAt = time.Time{}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.InvalidateSpecies(ctx); err != nil {
			return fmt.Errorf("invalidate catalog cache: %w", err)
		}
	}
	return nil
}
