package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			mood       TEXT NOT NULL,
			body       TEXT,
			sentiment  REAL NOT NULL,
			insight    TEXT NOT NULL,
			shared     BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS stress_readings (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			heart_rate   INTEGER NOT NULL,
			tier         INTEGER NOT NULL,
			source       TEXT NOT NULL,
			intervention BOOLEAN NOT NULL DEFAULT false,
			created_at   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sleep_sessions (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL,
			start_at         TEXT NOT NULL,
			end_at           TEXT NOT NULL,
			duration_min     INTEGER NOT NULL,
			quality          INTEGER NOT NULL,
			routine_followed BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS exercise_completions (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL,
			exercise      TEXT NOT NULL,
			score         INTEGER NOT NULL,
			streak        INTEGER NOT NULL,
			fitness_level INTEGER NOT NULL,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS wellness_snapshots (
			user_id         TEXT PRIMARY KEY,
			score           INTEGER NOT NULL,
			label           TEXT NOT NULL,
			mood_entries    INTEGER NOT NULL,
			fitness_level   INTEGER NOT NULL,
			avg_stress_tier REAL NOT NULL,
			avg_sleep_hours REAL NOT NULL,
			streak_days     INTEGER NOT NULL,
			computed_at     TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_user ON mood_entries(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_stress_readings_user ON stress_readings(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sleep_sessions_user ON sleep_sessions(user_id, start_at)`,
		`CREATE INDEX IF NOT EXISTS idx_exercise_completions_user ON exercise_completions(user_id, created_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
