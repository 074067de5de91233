package postgres

import (
	"context"
	"database/sql"
	"time"

	"pokedex/internal/database"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const profileColumns = `id, username, gold, xp, level, equipped_skin, equipped_theme, equipped_badge, equipped_name_color, created_at`

func scanProfile(row scanner) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Gold,
		&p.XP,
		&p.Level,
		&p.EquippedSkin,
		&p.EquippedTheme,
		&p.EquippedBadge,
		&p.EquippedNameColor,
		&p.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

// Create inserts the profile and its signup bonus ledger entry.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	var out *model.Profile
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO profiles (id, username, gold, xp, level, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+profileColumns,
			p.ID, p.Username, p.Gold, p.XP, p.Level, p.CreatedAt,
		)
		created, err := scanProfile(row)
		if err != nil {
			if isUniqueViolation(err) {
				return repository.ErrDuplicate
			}
			return err
		}
		if created.Gold > 0 {
			if err := insertLedger(ctx, tx, model.LedgerEntry{
				ID:        newLedgerID(created.CreatedAt),
				UserID:    created.ID,
				Delta:     created.Gold,
				Reason:    model.LedgerSignupBonus,
				CreatedAt: created.CreatedAt,
			}); err != nil {
				return err
			}
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single profile.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

// UpdateUsername renames a profile.
func (r *ProfilePostgres) UpdateUsername(ctx context.Context, id, username string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE profiles SET username = $2
		WHERE id = $1
		RETURNING `+profileColumns,
		id, username,
	)
	p, err := scanProfile(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

// Ledger returns the newest-first gold history of a user.
func (r *ProfilePostgres) Ledger(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.LedgerEntry], error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM gold_ledger WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, user_id, delta, reason, reference, created_at
		FROM gold_ledger
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LedgerEntry, 0)
	for rows.Next() {
		var (
			e       model.LedgerEntry
			created time.Time
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.Reference, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = created
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.LedgerEntry]{Items: items, Total: total}, nil
}
