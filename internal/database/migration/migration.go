package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pokedex/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_species",
		SQL: `CREATE TABLE IF NOT EXISTS species (
  number             INT  PRIMARY KEY CHECK (number > 0),
  name               TEXT NOT NULL,
  primary_type       TEXT NOT NULL,
  secondary_type     TEXT NOT NULL DEFAULT '',
  generation         INT  NOT NULL,
  evolution_chain_id INT  NOT NULL DEFAULT 0,
  evolves_from       INT  NULL,
  sprite_url         TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_species_chain",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_species_chain ON species (evolution_chain_id);`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  username            TEXT        NOT NULL UNIQUE,
  gold                BIGINT      NOT NULL DEFAULT 0 CHECK (gold >= 0),
  xp                  BIGINT      NOT NULL DEFAULT 0 CHECK (xp >= 0),
  level               INT         NOT NULL DEFAULT 1 CHECK (level >= 1),
  equipped_skin       TEXT        NOT NULL DEFAULT '',
  equipped_theme      TEXT        NOT NULL DEFAULT '',
  equipped_badge      TEXT        NOT NULL DEFAULT '',
  equipped_name_color TEXT        NOT NULL DEFAULT '',
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_dex_entries",
		SQL: `CREATE TABLE IF NOT EXISTS dex_entries (
  user_id   UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  number    INT         NOT NULL CHECK (number > 0),
  marked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, number)
);`,
	},
	{
		Name: "create_table_missions",
		SQL: `CREATE TABLE IF NOT EXISTS missions (
  id          UUID   PRIMARY KEY DEFAULT uuid_generate_v4(),
  code        TEXT   NOT NULL UNIQUE,
  title       TEXT   NOT NULL,
  description TEXT   NOT NULL DEFAULT '',
  kind        TEXT   NOT NULL,
  target      INT    NOT NULL CHECK (target > 0),
  reward_gold BIGINT NOT NULL DEFAULT 0 CHECK (reward_gold >= 0),
  reward_xp   BIGINT NOT NULL DEFAULT 0 CHECK (reward_xp >= 0)
);`,
	},
	{
		Name: "create_table_user_missions",
		SQL: `CREATE TABLE IF NOT EXISTS user_missions (
  user_id      UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  mission_id   UUID        NOT NULL REFERENCES missions (id) ON DELETE CASCADE,
  progress     INT         NOT NULL DEFAULT 0 CHECK (progress >= 0),
  completed_at TIMESTAMPTZ NULL,
  claimed_at   TIMESTAMPTZ NULL,
  PRIMARY KEY (user_id, mission_id)
);`,
	},
	{
		Name: "create_table_shop_items",
		SQL: `CREATE TABLE IF NOT EXISTS shop_items (
  id          UUID   PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT   NOT NULL,
  category    TEXT   NOT NULL,
  price       BIGINT NOT NULL CHECK (price >= 0),
  description TEXT   NOT NULL DEFAULT '',
  image_key   TEXT   NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_inventory",
		SQL: `CREATE TABLE IF NOT EXISTS inventory (
  user_id     UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  item_id     UUID        NOT NULL REFERENCES shop_items (id) ON DELETE CASCADE,
  acquired_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, item_id)
);`,
	},
	{
		Name: "create_table_teams",
		SQL: `CREATE TABLE IF NOT EXISTS teams (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  name       TEXT        NOT NULL,
  members    JSONB       NOT NULL DEFAULT '[]',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_teams_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_teams_user_id ON teams (user_id);`,
	},
	{
		Name: "create_table_gold_ledger",
		SQL: `CREATE TABLE IF NOT EXISTS gold_ledger (
  id         TEXT        PRIMARY KEY,
  user_id    UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  delta      BIGINT      NOT NULL,
  reason     TEXT        NOT NULL,
  reference  TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_gold_ledger_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_gold_ledger_user_id ON gold_ledger (user_id, id DESC);`,
	},
}

const createLedgerTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureMigrated applies every schema step not yet recorded in schema_migrations.
// Each step runs in its own transaction together with its bookkeeping row.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()

	log.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	if _, err := db.ExecContext(ctx, createLedgerTable); err != nil {
		log.Log(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to create schema_migrations: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied := 0
	for _, step := range steps {
		stepStart := time.Now()

		var done bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, step.Name,
		).Scan(&done); err != nil {
			return fmt.Errorf("check migration step %s: %w", step.Name, err)
		}
		if done {
			continue
		}

		if err := applyStep(ctx, db, step); err != nil {
			log.Log(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		applied++

		log.Log(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	event := "db_migration_success"
	if applied == 0 {
		event = "db_migration_skip"
	}
	log.Log(map[string]any{
		"component":     "database",
		"event":         event,
		"status":        "success",
		"steps_applied": applied,
		"db_host":       dbHost,
		"duration_ms":   time.Since(start).Milliseconds(),
	})

	return nil
}

func applyStep(ctx context.Context, db *sql.DB, step migrationStep) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, step.Name); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
