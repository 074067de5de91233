package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/model"
	"pokedex/internal/repository"
)

var missionCols = []string{"id", "code", "title", "description", "kind", "target", "reward_gold", "reward_xp", "progress", "completed_at", "claimed_at"}

func fixedNow() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func newMissionRepo(t *testing.T) (*MissionPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewMissionPostgres(db)
	repo.now = fixedNow
	return repo, mock
}

func TestMissionPostgres_ListForUser(t *testing.T) {
	repo, mock := newMissionRepo(t)
	done := fixedNow()

	mock.ExpectQuery("SELECT (.+) FROM missions m LEFT JOIN user_missions").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(missionCols).
			AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 50, 10, done, nil).
			AddRow("m2", "team_1", "First team", "", "build_team", 1, 50, 20, 0, nil, nil))

	got, err := repo.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Completed)
	assert.True(t, got[0].Claimable())
	assert.Equal(t, model.MissionOwnPokemon, got[0].Kind)
	assert.False(t, got[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissionPostgres_UpdateProgress(t *testing.T) {
	repo, mock := newMissionRepo(t)
	earlier := fixedNow().Add(-time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_missions").
		WithArgs("user-1", "own_pokemon").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m (.+) FOR UPDATE OF um").
		WithArgs("user-1", "own_pokemon").
		WillReturnRows(sqlmock.NewRows(missionCols).
			AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 50, 9, nil, nil).
			AddRow("m2", "dex_100", "Catch 100", "", "own_pokemon", 100, 500, 200, 9, nil, nil).
			AddRow("m3", "dex_1", "Catch 1", "", "own_pokemon", 1, 10, 5, 1, earlier, earlier))
	mock.ExpectExec("UPDATE user_missions SET progress").
		WithArgs("user-1", "m1", 10, fixedNow()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_missions SET progress").
		WithArgs("user-1", "m2", 12, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	completed, err := repo.UpdateProgress(context.Background(), "user-1", model.MissionOwnPokemon,
		func(int) int { return 12 })
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "dex_10", completed[0].Code)
	assert.Equal(t, 10, completed[0].Progress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissionPostgres_UpdateProgressKeepsCompletion(t *testing.T) {
	repo, mock := newMissionRepo(t)
	earlier := fixedNow().Add(-24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_missions").
		WithArgs("user-1", "own_pokemon").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m (.+) FOR UPDATE OF um").
		WithArgs("user-1", "own_pokemon").
		WillReturnRows(sqlmock.NewRows(missionCols).
			AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 50, 10, earlier, nil))
	mock.ExpectExec("UPDATE user_missions SET progress").
		WithArgs("user-1", "m1", 4, earlier).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	completed, err := repo.UpdateProgress(context.Background(), "user-1", model.MissionOwnPokemon,
		func(int) int { return 4 })
	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissionPostgres_Claim(t *testing.T) {
	ctx := context.Background()
	done := fixedNow().Add(-time.Minute)

	t.Run("credits reward and levels up", func(t *testing.T) {
		repo, mock := newMissionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m").
			WithArgs("user-1", "m1").
			WillReturnRows(sqlmock.NewRows(missionCols).
				AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 150, 10, done, nil))
		mock.ExpectExec("UPDATE user_missions SET claimed_at").
			WithArgs("user-1", "m1", fixedNow()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT level, xp FROM profiles WHERE id = (.+) FOR UPDATE").
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"level", "xp"}).AddRow(1, 60))
		mock.ExpectQuery("UPDATE profiles SET gold = gold \\+").
			WithArgs("user-1", int64(100), int64(110), 2).
			WillReturnRows(profileRow("user-1", 600, 110, 2))
		mock.ExpectExec("INSERT INTO gold_ledger").
			WithArgs(sqlmock.AnyArg(), "user-1", int64(100), model.LedgerMissionReward, "dex_10", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		out, err := repo.Claim(ctx, "user-1", "m1")
		require.NoError(t, err)
		assert.Equal(t, 1, out.LevelsGained)
		assert.Equal(t, 2, out.Profile.Level)
		assert.NotNil(t, out.Mission.ClaimedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already claimed", func(t *testing.T) {
		repo, mock := newMissionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m").
			WithArgs("user-1", "m1").
			WillReturnRows(sqlmock.NewRows(missionCols).
				AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 150, 10, done, done))
		mock.ExpectRollback()

		_, err := repo.Claim(ctx, "user-1", "m1")
		assert.ErrorIs(t, err, repository.ErrAlreadyClaimed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not completed", func(t *testing.T) {
		repo, mock := newMissionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m").
			WithArgs("user-1", "m1").
			WillReturnRows(sqlmock.NewRows(missionCols).
				AddRow("m1", "dex_10", "Catch 10", "", "own_pokemon", 10, 100, 150, 4, nil, nil))
		mock.ExpectRollback()

		_, err := repo.Claim(ctx, "user-1", "m1")
		assert.ErrorIs(t, err, repository.ErrNotClaimable)
	})

	t.Run("never started", func(t *testing.T) {
		repo, mock := newMissionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m").
			WithArgs("user-1", "m1").
			WillReturnRows(sqlmock.NewRows(missionCols))
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM missions").
			WithArgs("m1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.Claim(ctx, "user-1", "m1")
		assert.ErrorIs(t, err, repository.ErrNotClaimable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown mission", func(t *testing.T) {
		repo, mock := newMissionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM user_missions um JOIN missions m").
			WillReturnRows(sqlmock.NewRows(missionCols))
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM missions").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := repo.Claim(ctx, "user-1", "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
