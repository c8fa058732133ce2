package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// migrations are applied in order; each entry moves the schema from the
// previous version to its own.
var migrations = []struct {
	version    int
	statements []string
}{
	{1, schemaV1},
}

// currentSchemaVersion is the version a fully migrated database reports.
var currentSchemaVersion = migrations[len(migrations)-1].version

// Migrate applies every migration newer than the recorded schema version.
// A database with no version row is treated as version 0.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var version int
	err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		if err := db.applyMigration(m.version, m.statements); err != nil {
			return fmt.Errorf("migration v%d: %w", m.version, err)
		}
	}
	return nil
}

// applyMigration runs statements and records version in one transaction.
func (db *DB) applyMigration(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %.40q: %w", stmt, err)
		}
	}
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// schemaV1 creates the record tables.
var schemaV1 = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT,
		due_date    TEXT,
		priority    TEXT DEFAULT 'Medium',
		completed   INTEGER DEFAULT 0,
		tags        TEXT,
		recurring   TEXT,
		created_at  TEXT DEFAULT (datetime('now','localtime'))
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		content    TEXT,
		created_at TEXT DEFAULT (datetime('now','localtime')),
		updated_at TEXT DEFAULT (datetime('now','localtime'))
	)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		amount      REAL NOT NULL,
		date        TEXT NOT NULL,
		category    TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		color      TEXT DEFAULT '#6366f1',
		date       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL,
		completed_days TEXT DEFAULT '',
		created_at     TEXT DEFAULT (datetime('now','localtime'))
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS moods (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		mood      TEXT NOT NULL,
		logged_at TEXT DEFAULT (datetime('now','localtime'))
	)`,

	// Indexes.
	`CREATE INDEX IF NOT EXISTS idx_events_date ON schedule_events(date)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
	`CREATE INDEX IF NOT EXISTS idx_moods_logged ON moods(logged_at)`,
}
