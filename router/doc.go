// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Eurovision table API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Identity:

	POST /login - Find or create user by username

Stages (public):

	GET /stages              - List stages
	GET /stages/{id}/ranking - Live standings
	GET /stages/{id}/votes   - Per-user vote count and favorite
	GET /stages/{id}/export  - Standings workbook (.xlsx)

Voting (requires X-User-ID):

	GET  /stages/{id}           - Stage page data
	POST /stages/{id}/grades    - Submit a grade
	GET  /stages/{id}/my-grades - Caller's current grades

Admin (requires X-Admin-Key):

	POST /stages                          - Create stage
	POST /stages/{id}/roster              - Import CSV/.xlsx roster (?clear=true)
	PUT  /stages/{id}/roster/{country_id} - Change running order

# Handler Initialization

	userHandler := handlers.NewUserHandler(db, cfg)
	stageHandler := handlers.NewStageHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	rosterHandler := handlers.NewRosterHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
