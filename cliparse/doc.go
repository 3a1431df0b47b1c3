// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string; sqlite defaults to eurovision-table.db
  - AdminKey: Secret required on roster management routes (required)
  - SeedOnStart: create stages and rosters at startup
  - UseRealData: seed with the 2023 contest instead of dummy data

# CLI Flags

	-p            Server port
	-t            Database type
	-d            Database URL
	--admin-key   Admin key
	--seed        Seed on start
	--real-data   Seed with real data

# Environment Variables

Flags fall back to environment variables:

	PORT                     → -p
	DATABASE_TYPE            → -t
	DATABASE_URL             → -d
	ADMIN_KEY                → --admin-key
	AUTO_INIT_DB             → --seed
	USE_REAL_EUROVISION_DATA → --real-data

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing.
*/
package cliparse
