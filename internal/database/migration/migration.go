package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bindash/internal/logging"
	"bindash/internal/model"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_trash_bins",
		SQL: `CREATE TABLE IF NOT EXISTS trash_bins (
  id         TEXT     PRIMARY KEY,
  location   TEXT     NOT NULL,
  fill_level SMALLINT NOT NULL CHECK (fill_level BETWEEN 0 AND 100),
  position   INTEGER  NOT NULL
);`,
	},
	{
		Name: "create_index_trash_bins_position",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_trash_bins_position ON trash_bins (position);`,
	},
}

const insertSeed = `INSERT INTO trash_bins (id, location, fill_level, position) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`

// EnsureMigrated creates the trash_bins table when it is missing and fills it
// with seed so a fresh database serves the same collection as the in-memory source.
// An existing table is left untouched.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string, seed []model.TrashBin) error {
	start := time.Now()

	log.Entry(logging.Fields{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.trash_bins') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		fail(log, dbHost, start, "", fmt.Errorf("failed to check sentinel table: %w", err))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Entry(logging.Fields{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	log.Entry(logging.Fields{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		fail(log, dbHost, start, "", err)
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			fail(log, dbHost, start, step.Name, err)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logStep(log, dbHost, step.Name, stepStart)
	}

	stepStart := time.Now()
	for i, b := range seed {
		if _, err := tx.ExecContext(ctx, insertSeed, b.ID, b.Location, b.FillLevel, i); err != nil {
			fail(log, dbHost, start, "insert_seed_trash_bins", err)
			return fmt.Errorf("seed bin %s: %w", b.ID, err)
		}
	}
	logStep(log, dbHost, "insert_seed_trash_bins", stepStart)

	if err := tx.Commit(); err != nil {
		fail(log, dbHost, start, "commit", err)
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Entry(logging.Fields{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"seeded_rows": len(seed),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logStep(log *logging.Logger, dbHost, name string, stepStart time.Time) {
	log.Entry(logging.Fields{
		"component":        "database",
		"event":            "db_migration_step",
		"status":           "success",
		"migration_step":   name,
		"db_host":          dbHost,
		"step_duration_ms": time.Since(stepStart).Milliseconds(),
	})
}

func fail(log *logging.Logger, dbHost string, start time.Time, step string, err error) {
	f := logging.Fields{
		"level":         "error",
		"component":     "database",
		"event":         "db_migration_failed",
		"status":        "error",
		"error_message": err.Error(),
		"db_host":       dbHost,
		"duration_ms":   time.Since(start).Milliseconds(),
	}
	if step != "" {
		f["migration_step"] = step
	}
	log.Entry(f)
}
