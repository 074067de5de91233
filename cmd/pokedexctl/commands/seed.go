package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/cache"
	"pokedex/internal/model"
	"pokedex/internal/repository"
	"pokedex/internal/repository/postgres"
)

type seedFiles struct {
	species  string
	items    string
	missions string
}

type seeder struct {
	species  repository.SpeciesRepository
	shop     repository.ShopRepository
	missions repository.MissionRepository
	// invalidate drops shared catalog copies after species change. May be nil.
	invalidate func(ctx context.Context) error
}

func seedCmd() *cobra.Command {
	var files seedFiles
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert species, shop items and missions from JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if files.species == "" && files.items == "" && files.missions == "" {
				return fmt.Errorf("at least one of --species, --items or --missions is required")
			}

			s := seeder{
				species:  postgres.NewSpeciesPostgres(db),
				shop:     postgres.NewShopPostgres(db),
				missions: postgres.NewMissionPostgres(db),
			}
			if cfg.Redis.URL != "" && files.species != "" {
				rc, err := cache.New(cmd.Context(), cfg.Redis.URL)
				if err != nil {
					log.Warn("catalog cache unavailable, skipping invalidation", map[string]any{"error": err.Error()})
				} else {
					defer rc.Close()
					s.invalidate = cache.NewCatalogCache(rc, cfg.Redis.CatalogTTL).InvalidateSpecies
				}
			}
			return s.run(cmd.Context(), files)
		},
	}

	cmd.Flags().StringVar(&files.species, "species", "", "JSON array of species")
	cmd.Flags().StringVar(&files.items, "items", "", "JSON array of shop items")
	cmd.Flags().StringVar(&files.missions, "missions", "", "JSON array of missions")
	return cmd
}

func (s seeder) run(ctx context.Context, files seedFiles) error {
	if files.species != "" {
		var species []model.Species
		if err := readJSON(files.species, &species); err != nil {
			return err
		}
		species, err := normalizeSpecies(species)
		if err != nil {
			return err
		}
		if err := s.species.Upsert(ctx, species); err != nil {
			return fmt.Errorf("upsert species: %w", err)
		}
		if s.invalidate != nil {
			if err := s.invalidate(ctx); err != nil {
				log.Warn("catalog cache invalidation failed", map[string]any{"error": err.Error()})
			}
		}
		log.Info("species seeded", map[string]any{"count": len(species)})
	}

	if files.items != "" {
		var items []model.ShopItem
		if err := readJSON(files.items, &items); err != nil {
			return err
		}
		for _, it := range items {
			if !it.Category.Valid() {
				return fmt.Errorf("item %q: unknown category %q", it.Name, it.Category)
			}
			if it.Price < 0 {
				return fmt.Errorf("item %q: negative price", it.Name)
			}
		}
		if err := s.shop.UpsertItems(ctx, items); err != nil {
			return fmt.Errorf("upsert items: %w", err)
		}
		log.Info("shop items seeded", map[string]any{"count": len(items)})
	}

	if files.missions != "" {
		var missions []model.Mission
		if err := readJSON(files.missions, &missions); err != nil {
			return err
		}
		for _, m := range missions {
			if m.Code == "" {
				return fmt.Errorf("mission %q: code is required", m.Title)
			}
			if !m.Kind.Valid() {
				return fmt.Errorf("mission %q: unknown kind %q", m.Code, m.Kind)
			}
			if m.Target < 1 {
				return fmt.Errorf("mission %q: target must be positive", m.Code)
			}
		}
		if err := s.missions.Upsert(ctx, missions); err != nil {
			return fmt.Errorf("upsert missions: %w", err)
		}
		log.Info("missions seeded", map[string]any{"count": len(missions)})
	}
	return nil
}

// normalizeSpecies fills a missing generation from the national number and rejects rows outside
// the catalog.
func normalizeSpecies(species []model.Species) ([]model.Species, error) {
	out := make([]model.Species, 0, len(species))
	for _, s := range species {
		if !model.ValidNationalNumber(s.Number) {
			return nil, fmt.Errorf("species %q: national number %d out of range", s.Name, s.Number)
		}
		if s.Name == "" || s.PrimaryType == "" {
			return nil, fmt.Errorf("species #%d: name and primary type are required", s.Number)
		}
		if s.Generation == 0 {
			s.Generation = model.GenerationOf(s.Number)
		}
		out = append(out, s)
	}
	return out, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
