package postgres

import (
	"context"
	"database/sql"

	"pokedex/internal/database"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

// SpeciesPostgres is a PostgreSQL implementation of repository.SpeciesRepository.
type SpeciesPostgres struct {
	db *sql.DB
}

// NewSpeciesPostgres creates a new SpeciesPostgres repository.
func NewSpeciesPostgres(db *sql.DB) *SpeciesPostgres {
	return &SpeciesPostgres{db: db}
}

var _ repository.SpeciesRepository = (*SpeciesPostgres)(nil)

// All loads the whole catalog. It is small enough (about a thousand rows) to hold in memory.
func (r *SpeciesPostgres) All(ctx context.Context) ([]model.Species, error) {
	const q = `
		SELECT number, name, primary_type, secondary_type, generation, evolution_chain_id, evolves_from, sprite_url
		FROM species
		ORDER BY number
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Species, 0, model.MaxNationalNumber)
	for rows.Next() {
		var (
			s           model.Species
			evolvesFrom sql.NullInt64
		)
		if err := rows.Scan(
			&s.Number,
			&s.Name,
			&s.PrimaryType,
			&s.SecondaryType,
			&s.Generation,
			&s.EvolutionChainID,
			&evolvesFrom,
			&s.SpriteURL,
		); err != nil {
			return nil, err
		}
		if evolvesFrom.Valid {
			v := int(evolvesFrom.Int64)
			s.EvolvesFrom = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes species in one transaction.
func (r *SpeciesPostgres) Upsert(ctx context.Context, species []model.Species) error {
	const q = `
		INSERT INTO species (number, name, primary_type, secondary_type, generation, evolution_chain_id, evolves_from, sprite_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (number) DO UPDATE SET
			name = EXCLUDED.name,
			primary_type = EXCLUDED.primary_type,
			secondary_type = EXCLUDED.secondary_type,
			generation = EXCLUDED.generation,
			evolution_chain_id = EXCLUDED.evolution_chain_id,
			evolves_from = EXCLUDED.evolves_from,
			sprite_url = EXCLUDED.sprite_url
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, s := range species {
			var evolvesFrom sql.NullInt64
			if s.EvolvesFrom != nil {
				evolvesFrom = sql.NullInt64{Int64: int64(*s.EvolvesFrom), Valid: true}
			}
			if _, err := tx.ExecContext(ctx, q,
				s.Number,
				s.Name,
				s.PrimaryType,
				s.SecondaryType,
				s.Generation,
				s.EvolutionChainID,
				evolvesFrom,
				s.SpriteURL,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
