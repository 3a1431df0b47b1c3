// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/eurovision-table/models"
)

// AppendGrade inserts a new ledger row and returns it with its id set.
func (s *Store) AppendGrade(ctx context.Context, g models.Grade) (models.Grade, error) {
	g.Timestamp = g.Timestamp.UTC()
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO grade (user_id, stage_id, country_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, g.UserID, g.StageID, g.CountryID, g.Value, g.Timestamp).Scan(&g.ID)
	if err != nil {
		return models.Grade{}, fail("insert grade", err)
	}
	return g, nil
}

// ListUserStageGrades returns every ledger row a user wrote for a stage.
func (s *Store) ListUserStageGrades(ctx context.Context, userID, stageID int64) ([]models.Grade, error) {
	return s.listGrades(ctx, `
		SELECT id, user_id, stage_id, country_id, value, created_at
		FROM grade
		WHERE user_id = $1 AND stage_id = $2
		ORDER BY id
	`, userID, stageID)
}

// ListGradeHistory returns every ledger row for one (user, stage, country).
func (s *Store) ListGradeHistory(ctx context.Context, userID, stageID, countryID int64) ([]models.Grade, error) {
	return s.listGrades(ctx, `
		SELECT id, user_id, stage_id, country_id, value, created_at
		FROM grade
		WHERE user_id = $1 AND stage_id = $2 AND country_id = $3
		ORDER BY id
	`, userID, stageID, countryID)
}

// ListStageGrades returns every ledger row for a stage across all users.
func (s *Store) ListStageGrades(ctx context.Context, stageID int64) ([]models.Grade, error) {
	return s.listGrades(ctx, `
		SELECT id, user_id, stage_id, country_id, value, created_at
		FROM grade
		WHERE stage_id = $1
		ORDER BY id
	`, stageID)
}

func (s *Store) listGrades(ctx context.Context, query string, args ...any) ([]models.Grade, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fail("query grades", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.UserID, &g.StageID, &g.CountryID, &g.Value, &g.Timestamp); err != nil {
			return nil, fail("scan grade", err)
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("query grades", err)
	}
	return grades, nil
}
