package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pokedex/internal/database"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const userMissionColumns = `m.id, m.code, m.title, m.description, m.kind, m.target, m.reward_gold, m.reward_xp,
	COALESCE(um.progress, 0), um.completed_at, um.claimed_at`

func scanUserMission(row scanner) (*model.UserMission, error) {
	var (
		m                      model.UserMission
		completedAt, claimedAt sql.NullTime
	)
	if err := row.Scan(
		&m.ID,
		&m.Code,
		&m.Title,
		&m.Description,
		&m.Kind,
		&m.Target,
		&m.RewardGold,
		&m.RewardXP,
		&m.Progress,
		&completedAt,
		&claimedAt,
	); err != nil {
		return nil, notFound(err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		m.CompletedAt = &t
		m.Completed = true
	}
	if claimedAt.Valid {
		t := claimedAt.Time
		m.ClaimedAt = &t
	}
	return &m, nil
}

// MissionPostgres is a PostgreSQL implementation of repository.MissionRepository.
type MissionPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewMissionPostgres creates a new MissionPostgres repository.
func NewMissionPostgres(db *sql.DB) *MissionPostgres {
	return &MissionPostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.MissionRepository = (*MissionPostgres)(nil)

// ListForUser returns every mission with the user's progress; missions never touched show zero.
func (r *MissionPostgres) ListForUser(ctx context.Context, userID string) ([]model.UserMission, error) {
	q := `
		SELECT ` + userMissionColumns + `
		FROM missions m
		LEFT JOIN user_missions um ON um.mission_id = m.id AND um.user_id = $1
		ORDER BY m.kind, m.target, m.code
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.UserMission, 0)
	for rows.Next() {
		m, err := scanUserMission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProgress locks the user's rows for missions of kind, applies next and writes them back.
// It returns the missions that became completed during this call.
func (r *MissionPostgres) UpdateProgress(ctx context.Context, userID string, kind model.MissionKind, next repository.ProgressFunc) ([]model.UserMission, error) {
	completed := make([]model.UserMission, 0)
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_missions (user_id, mission_id)
			SELECT $1, id FROM missions WHERE kind = $2
			ON CONFLICT (user_id, mission_id) DO NOTHING
		`, userID, string(kind)); err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrNotFound
			}
			return err
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT `+userMissionColumns+`
			FROM user_missions um
			JOIN missions m ON m.id = um.mission_id
			WHERE um.user_id = $1 AND m.kind = $2
			FOR UPDATE OF um
		`, userID, string(kind))
		if err != nil {
			return err
		}
		var current []model.UserMission
		for rows.Next() {
			m, err := scanUserMission(rows)
			if err != nil {
				rows.Close()
				return err
			}
			current = append(current, *m)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		now := r.now()
		for _, m := range current {
			progress := model.ClampProgress(next(m.Progress), m.Target)
			if progress == m.Progress {
				continue
			}
			completedAt := m.CompletedAt
			if completedAt == nil && progress >= m.Target {
				completedAt = &now
				m.Completed = true
				m.CompletedAt = completedAt
				m.Progress = progress
				completed = append(completed, m)
			}
			if _, err := tx.ExecContext(ctx, `
				UPDATE user_missions SET progress = $3, completed_at = $4
				WHERE user_id = $1 AND mission_id = $2
			`, userID, m.ID, progress, completedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// Claim credits a completed mission's reward exactly once.
func (r *MissionPostgres) Claim(ctx context.Context, userID, missionID string) (*repository.ClaimOutcome, error) {
	var out *repository.ClaimOutcome
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+userMissionColumns+`
			FROM user_missions um
			JOIN missions m ON m.id = um.mission_id
			WHERE um.user_id = $1 AND um.mission_id = $2
			FOR UPDATE OF um
		`, userID, missionID)
		m, err := scanUserMission(row)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM missions WHERE id = $1)`, missionID,
			).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return repository.ErrNotFound
			}
			return repository.ErrNotClaimable
		}
		if !m.Completed {
			return repository.ErrNotClaimable
		}
		if m.ClaimedAt != nil {
			return repository.ErrAlreadyClaimed
		}

		now := r.now()
		if _, err := tx.ExecContext(ctx, `
			UPDATE user_missions SET claimed_at = $3
			WHERE user_id = $1 AND mission_id = $2
		`, userID, missionID, now); err != nil {
			return err
		}
		m.ClaimedAt = &now

		p, gained, err := creditTx(ctx, tx, userID, m.RewardGold, m.RewardXP, model.LedgerMissionReward, m.Code)
		if err != nil {
			return err
		}
		out = &repository.ClaimOutcome{Mission: *m, Profile: *p, LevelsGained: gained}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes mission definitions keyed by code.
func (r *MissionPostgres) Upsert(ctx context.Context, missions []model.Mission) error {
	const q = `
		INSERT INTO missions (code, title, description, kind, target, reward_gold, reward_xp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			kind = EXCLUDED.kind,
			target = EXCLUDED.target,
			reward_gold = EXCLUDED.reward_gold,
			reward_xp = EXCLUDED.reward_xp
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, m := range missions {
			if _, err := tx.ExecContext(ctx, q,
				m.Code, m.Title, m.Description, string(m.Kind), m.Target, m.RewardGold, m.RewardXP,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
