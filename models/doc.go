// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - User: voter identity, unique by username
  - Country: competing entry (display name, artist, song)
  - Stage: voting round such as "Final"
  - StageCountry: a country's performance position within a stage
  - Grade: one immutable vote event (value 1-12)

# Ranking Types

  - RankingEntry: country_id and summed current grades
  - VoteSummary: per-user vote count and favorite country
  - StageView: everything the stage page needs in one payload

# Errors

Sentinel errors classify every failure the core reports:

	ErrInvalidGradeValue   → 400
	ErrInvalidOrderValue   → 400
	ErrMalformedEntry      → 400 (EntryError carries row and field)
	ErrNotFound            → 404
	ErrAssociationNotFound → 404
	ErrPersistence         → 500 (PersistenceError wraps the driver error)

Use errors.Is to classify and errors.As to get detail:

	var entryErr *models.EntryError
	if errors.As(err, &entryErr) {
		log.Printf("row %d field %s", entryErr.Row, entryErr.Field)
	}
*/
package models
