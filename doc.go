// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Eurovision table API server.

Friends log in with a username, grade each country of a stage from 1 to 12,
and watch the combined ranking change as votes come in. Admins load stage
rosters from CSV or Excel and adjust the running order.

# Starting the Server

	ADMIN_KEY=changeme go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --admin-key changeme --seed

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): Secret for roster management routes

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (required for postgres)
  - AUTO_INIT_DB (--seed): create stages and rosters on start
  - USE_REAL_EUROVISION_DATA (--real-data): seed with the 2023 contest

# Architecture

  - handlers: HTTP request handlers (login, stages, voting, roster)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - ledger: append-only grade log and current-grade resolution
  - ranking: live standings and per-user vote summaries
  - roster: stage running order, CSV and .xlsx import
  - report: .xlsx standings export
  - store: SQL access for all entities
  - seed: initial stages and rosters
  - models: Request/response and domain types, error kinds
  - auth: user id and admin key checks
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
