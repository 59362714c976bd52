package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order on every open. Statements must be
// idempotent (CREATE ... IF NOT EXISTS).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS family_members (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL CHECK(role IN ('primary','co_parent','child')),
		age        INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS recurring_goals (
		id                     TEXT PRIMARY KEY,
		member_id              TEXT NOT NULL REFERENCES family_members(id) ON DELETE CASCADE,
		name                   TEXT NOT NULL,
		frequency_per_week     INTEGER NOT NULL,
		preferred_duration_min INTEGER NOT NULL,
		preferred_times        TEXT NOT NULL DEFAULT '',
		priority               TEXT NOT NULL CHECK(priority IN ('low','medium','high')),
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS recurring_commitments (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT REFERENCES family_members(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL CHECK(category IN ('work','activity','meal','other')),
		day_of_week INTEGER NOT NULL CHECK(day_of_week BETWEEN 1 AND 7),
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		is_shared   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		week_start TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(owner_id, week_start)
	)`,

	`CREATE TABLE IF NOT EXISTS time_blocks (
		id             TEXT PRIMARY KEY,
		schedule_id    TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		category       TEXT NOT NULL CHECK(category IN ('work','activity','meal','other')),
		start_at       TEXT NOT NULL,
		end_at         TEXT NOT NULL,
		owner_id       TEXT,
		is_shared      INTEGER NOT NULL DEFAULT 0,
		origin_goal_id TEXT,
		origin         TEXT NOT NULL CHECK(origin IN ('manual','fixed_commitment','ai_generated')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		deleted_at     TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_blocks_schedule
		ON time_blocks(schedule_id) WHERE deleted_at IS NULL`,

	`CREATE INDEX IF NOT EXISTS idx_schedules_owner_week
		ON schedules(owner_id, week_start)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
