package postgres

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"pokedex/internal/model"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newLedgerID returns a time-sortable identifier for a ledger row.
func newLedgerID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

func insertLedger(ctx context.Context, q queryer, e model.LedgerEntry) error {
	const stmt = `
		INSERT INTO gold_ledger (id, user_id, delta, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.ExecContext(ctx, stmt, e.ID, e.UserID, e.Delta, e.Reason, e.Reference, e.CreatedAt)
	return err
}

// creditTx adds gold and XP to a locked profile row, rolls levels over and records the ledger
// entry. It must run inside a transaction.
func creditTx(ctx context.Context, q queryer, userID string, gold, xp int64, reason, ref string) (*model.Profile, int, error) {
	var (
		level   int
		current int64
	)
	if err := q.QueryRowContext(ctx,
		`SELECT level, xp FROM profiles WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&level, &current); err != nil {
		return nil, 0, notFound(err)
	}

	newLevel, newXP, gained, err := model.ApplyXP(level, current, xp)
	if err != nil {
		return nil, 0, err
	}

	row := q.QueryRowContext(ctx, `
		UPDATE profiles SET gold = gold + $2, xp = $3, level = $4
		WHERE id = $1
		RETURNING `+profileColumns,
		userID, gold, newXP, newLevel,
	)
	p, err := scanProfile(row)
	if err != nil {
		return nil, 0, err
	}

	if gold != 0 {
		now := time.Now().UTC()
		if err := insertLedger(ctx, q, model.LedgerEntry{
			ID:        newLedgerID(now),
			UserID:    userID,
			Delta:     gold,
			Reason:    reason,
			Reference: ref,
			CreatedAt: now,
		}); err != nil {
			return nil, 0, err
		}
	}
	return p, gained, nil
}
