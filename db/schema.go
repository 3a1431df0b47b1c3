// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database of the given type and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var dsn string
	switch dbType {
	case TypeSQLite:
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		dsn = url + sep + "_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)"
	case TypePostgres:
		dsn = url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; serialize through one connection.
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	timestampType := "TIMESTAMP"
	if dbType == TypePostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
		timestampType = "TIMESTAMPTZ"
	}

	_, err := db.Exec(fmt.Sprintf(schema, idColumn, timestampType))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Placeholders: 1 = id column definition, 2 = timestamp type.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id %[1]s,
    username TEXT NOT NULL UNIQUE
);

-- Countries
CREATE TABLE IF NOT EXISTS country (
    id %[1]s,
    display_name TEXT NOT NULL UNIQUE,
    artist TEXT NOT NULL,
    song TEXT NOT NULL
);

-- Stages
CREATE TABLE IF NOT EXISTS stage (
    id %[1]s,
    display_name TEXT NOT NULL UNIQUE
);

-- Stage rosters
CREATE TABLE IF NOT EXISTS stage_country (
    stage_id BIGINT NOT NULL REFERENCES stage(id) ON DELETE CASCADE,
    country_id BIGINT NOT NULL REFERENCES country(id) ON DELETE CASCADE,
    sort_order INTEGER,
    PRIMARY KEY (stage_id, country_id)
);

CREATE INDEX IF NOT EXISTS idx_stage_country_order ON stage_country(stage_id, sort_order);

-- Grade ledger (append-only)
CREATE TABLE IF NOT EXISTS grade (
    id %[1]s,
    user_id BIGINT NOT NULL REFERENCES app_user(id),
    stage_id BIGINT NOT NULL REFERENCES stage(id),
    country_id BIGINT NOT NULL REFERENCES country(id),
    value INTEGER NOT NULL CHECK (value >= 1 AND value <= 12),
    created_at %[2]s NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_grade_user_stage ON grade(user_id, stage_id, country_id);
CREATE INDEX IF NOT EXISTS idx_grade_stage ON grade(stage_id);
`
