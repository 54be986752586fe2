package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list re-runs on every open; ALTER TABLE duplicates are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		ref          TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		author_id    TEXT NOT NULL DEFAULT '',
		workout_type TEXT NOT NULL DEFAULT 'general',
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_exercises (
		plan_ref      TEXT NOT NULL REFERENCES plans(ref) ON DELETE CASCADE,
		position      INTEGER NOT NULL CHECK(position >= 0),
		exercise_ref  TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		target_sets   INTEGER NOT NULL DEFAULT 0,
		target_reps   INTEGER NOT NULL DEFAULT 0,
		target_weight REAL NOT NULL DEFAULT 0,
		rpe_hint      REAL,
		set_type      TEXT NOT NULL DEFAULT 'working',
		PRIMARY KEY (plan_ref, position)
	)`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		author_id    TEXT NOT NULL DEFAULT '',
		workout_type TEXT NOT NULL DEFAULT 'general',
		plan_ref     TEXT NOT NULL DEFAULT '',
		started_at   TEXT NOT NULL,
		ended_at     TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workout_sets (
		workout_id   TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL CHECK(seq >= 0),
		exercise_ref TEXT NOT NULL,
		set_number   INTEGER NOT NULL CHECK(set_number > 0),
		reps         INTEGER NOT NULL CHECK(reps >= 0),
		weight       REAL NOT NULL DEFAULT 0,
		rpe          REAL,
		assisted     INTEGER NOT NULL DEFAULT 0,
		set_type     TEXT NOT NULL DEFAULT 'working',
		completed_at TEXT NOT NULL,
		PRIMARY KEY (workout_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id           TEXT PRIMARY KEY DEFAULT 'default',
		user_id      TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_started_at ON workouts(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_sets(exercise_ref)`,
}
