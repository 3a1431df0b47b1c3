// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver by database type:

	conn, err := db.Open(db.TypeSQLite, "eurovision-table.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite is opened with foreign keys on, WAL journaling, and a single
connection. PostgreSQL uses lib/pq.

# Schema Creation

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: voters, unique by username
  - country: entries, unique by display name
  - stage: voting rounds
  - stage_country: roster rows with sort_order
  - grade: append-only vote ledger

# Relationships

	stage *──* country (via stage_country)
	app_user 1──* grade
	stage 1──* grade
	country 1──* grade

Grades are never updated or deleted; the current grade for a
(user, stage, country) triple is resolved at read time.
*/
package db
