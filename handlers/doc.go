// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Eurovision table API.

# Handler Types

Each handler is a struct built from the database and config:

  - UserHandler: username login
  - StageHandler: stage listing, stage page, ranking, vote summary, export
  - VotingHandler: grade submission and the caller's current grades
  - RosterHandler: CSV/.xlsx roster import and reordering (admin)

	stageHandler := handlers.NewStageHandler(db, cfg)

# Identity

	POST /login → Login (returns user_id)

Voting routes require the X-User-ID header with that id. Admin routes
require X-Admin-Key.

# Voting Flow

	GET  /stages/{id}            → GetStage (roster, my grades, ranking, votes)
	POST /stages/{id}/grades     → SubmitGrade (returns updated ranking)
	GET  /stages/{id}/ranking    → GetRanking
	GET  /stages/{id}/votes      → GetVotes
	GET  /stages/{id}/my-grades  → GetMyGrades
	GET  /stages/{id}/export     → ExportStage (.xlsx)

Submitting again for the same country appends a new grade; the newest one
counts.

# Roster Management

	POST /stages                            → CreateStage
	POST /stages/{id}/roster?clear=true     → LoadRoster (CSV or .xlsx)
	PUT  /stages/{id}/roster/{country_id}   → ReorderCountry

Rows need country, artist and song; position is optional. Workbooks are
recognized by content type or a .xlsx file name. A bad row
rejects the whole file with a 400 naming the row and field.

# Errors

Domain errors map to statuses in writeError: validation → 400, missing
stage/country/association → 404, store failures → 500.
*/
package handlers
