package postgres

import (
	"context"
	"database/sql"

	"pokedex/internal/database"
	"pokedex/internal/repository"
)

// DexPostgres is a PostgreSQL implementation of repository.DexRepository.
type DexPostgres struct {
	db *sql.DB
}

// NewDexPostgres creates a new DexPostgres repository.
func NewDexPostgres(db *sql.DB) *DexPostgres {
	return &DexPostgres{db: db}
}

var _ repository.DexRepository = (*DexPostgres)(nil)

// Owned lists the user's marked national numbers.
func (r *DexPostgres) Owned(ctx context.Context, userID string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT number FROM dex_entries WHERE user_id = $1 ORDER BY number`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Mark inserts ownership marks, skipping numbers already owned.
func (r *DexPostgres) Mark(ctx context.Context, userID string, numbers []int) (int, error) {
	const q = `
		INSERT INTO dex_entries (user_id, number)
		VALUES ($1, $2)
		ON CONFLICT (user_id, number) DO NOTHING
	`
	added := 0
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, n := range numbers {
			res, err := tx.ExecContext(ctx, q, userID, n)
			if err != nil {
				if isForeignKeyViolation(err) {
					return repository.ErrNotFound
				}
				return err
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return err
			}
			added += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// Unmark deletes an ownership mark if present.
func (r *DexPostgres) Unmark(ctx context.Context, userID string, number int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM dex_entries WHERE user_id = $1 AND number = $2`, userID, number)
	return err
}
