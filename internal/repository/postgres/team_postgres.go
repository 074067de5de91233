package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pokedex/internal/database"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const teamColumns = `id, user_id, name, members, created_at, updated_at`

func scanTeam(row scanner) (*model.Team, error) {
	var (
		t       model.Team
		members []byte
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &members, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	if err := json.Unmarshal(members, &t.Members); err != nil {
		return nil, fmt.Errorf("decode team members: %w", err)
	}
	if t.Members == nil {
		t.Members = []int{}
	}
	return &t, nil
}

func encodeMembers(members []int) (string, error) {
	if members == nil {
		members = []int{}
	}
	b, err := json.Marshal(members)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// TeamPostgres is a PostgreSQL implementation of repository.TeamRepository.
// Members are stored as a JSONB array of national numbers in slot order.
type TeamPostgres struct {
	db *sql.DB
}

// NewTeamPostgres creates a new TeamPostgres repository.
func NewTeamPostgres(db *sql.DB) *TeamPostgres {
	return &TeamPostgres{db: db}
}

var _ repository.TeamRepository = (*TeamPostgres)(nil)

// ListByUser returns the user's teams, oldest first.
func (r *TeamPostgres) ListByUser(ctx context.Context, userID string) ([]model.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a team owned by userID.
func (r *TeamPostgres) FindByID(ctx context.Context, userID, id string) (*model.Team, error) {
	return scanTeam(r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1 AND user_id = $2`, id, userID))
}

// Count returns how many teams the user has.
func (r *TeamPostgres) Count(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts a team after checking the owner's team count. The owner's profile row is locked
// so concurrent creates for one user serialize on the count.
func (r *TeamPostgres) Create(ctx context.Context, team *model.Team, max int) (*model.Team, error) {
	members, err := encodeMembers(team.Members)
	if err != nil {
		return nil, err
	}

	var out *model.Team
	err = database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var id string
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM profiles WHERE id = $1 FOR UPDATE`, team.UserID,
		).Scan(&id); err != nil {
			return notFound(err)
		}

		var n int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM teams WHERE user_id = $1`, team.UserID,
		).Scan(&n); err != nil {
			return err
		}
		if n >= max {
			return repository.ErrLimitReached
		}

		created, err := scanTeam(tx.QueryRowContext(ctx, `
			INSERT INTO teams (id, user_id, name, members, created_at, updated_at)
			VALUES ($1, $2, $3, $4::jsonb, $5, $6)
			RETURNING `+teamColumns,
			team.ID, team.UserID, team.Name, members, team.CreatedAt, team.UpdatedAt,
		))
		if err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrNotFound
			}
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces a team's name and members.
func (r *TeamPostgres) Update(ctx context.Context, team *model.Team) (*model.Team, error) {
	members, err := encodeMembers(team.Members)
	if err != nil {
		return nil, err
	}
	return scanTeam(r.db.QueryRowContext(ctx, `
		UPDATE teams SET name = $3, members = $4::jsonb, updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING `+teamColumns,
		team.ID, team.UserID, team.Name, members, team.UpdatedAt,
	))
}

// Delete removes a team owned by userID.
func (r *TeamPostgres) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
