package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The shift and help_time columns store the raw codes verbatim; writes are
// upserts on the primary key, so the latest save wins.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shifts (
		date     TEXT NOT NULL,
		employee TEXT NOT NULL,
		shift    TEXT,
		PRIMARY KEY (date, employee)
	)`,

	`CREATE TABLE IF NOT EXISTS store_help_requests (
		date      TEXT NOT NULL,
		store     TEXT NOT NULL,
		help_time TEXT,
		PRIMARY KEY (date, store)
	)`,

	`ALTER TABLE shifts ADD COLUMN updated_at TEXT`,
	`ALTER TABLE store_help_requests ADD COLUMN updated_at TEXT`,

	`CREATE INDEX IF NOT EXISTS idx_help_requests_store ON store_help_requests(store, date)`,
}
