// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/eurovision-table/models"
)

func (s *Store) GetStage(ctx context.Context, id int64) (models.Stage, error) {
	var st models.Stage
	err := s.q.QueryRowContext(ctx, `
		SELECT id, display_name FROM stage WHERE id = $1
	`, id).Scan(&st.ID, &st.DisplayName)
	if isNoRows(err) {
		return models.Stage{}, notFound("stage", id)
	}
	if err != nil {
		return models.Stage{}, fail("query stage", err)
	}
	return st, nil
}

func (s *Store) FindOrCreateStage(ctx context.Context, name string) (models.Stage, error) {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO stage (display_name) VALUES ($1)
		ON CONFLICT (display_name) DO NOTHING
	`, name)
	if err != nil {
		return models.Stage{}, fail("insert stage", err)
	}

	var st models.Stage
	err = s.q.QueryRowContext(ctx, `
		SELECT id, display_name FROM stage WHERE display_name = $1
	`, name).Scan(&st.ID, &st.DisplayName)
	if err != nil {
		return models.Stage{}, fail("query stage", err)
	}
	return st, nil
}

func (s *Store) ListStages(ctx context.Context) ([]models.Stage, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, display_name FROM stage ORDER BY id`)
	if err != nil {
		return nil, fail("query stages", err)
	}
	defer rows.Close()

	stages := []models.Stage{}
	for rows.Next() {
		var st models.Stage
		if err := rows.Scan(&st.ID, &st.DisplayName); err != nil {
			return nil, fail("scan stage", err)
		}
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("query stages", err)
	}
	return stages, nil
}

// ListStageCountries returns the stage roster ascending by order. Rows
// without an order sort last; equal orders fall back to country id.
func (s *Store) ListStageCountries(ctx context.Context, stageID int64) ([]models.RosterCountry, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT c.id, c.display_name, c.artist, c.song, sc.sort_order
		FROM stage_country sc
		JOIN country c ON c.id = sc.country_id
		WHERE sc.stage_id = $1
		ORDER BY sc.sort_order IS NULL, sc.sort_order, c.id
	`, stageID)
	if err != nil {
		return nil, fail("query stage countries", err)
	}
	defer rows.Close()

	roster := []models.RosterCountry{}
	for rows.Next() {
		var rc models.RosterCountry
		var order sql.NullInt64
		if err := rows.Scan(&rc.ID, &rc.DisplayName, &rc.Artist, &rc.Song, &order); err != nil {
			return nil, fail("scan stage country", err)
		}
		rc.Order = intPtr(order)
		roster = append(roster, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("query stage countries", err)
	}
	return roster, nil
}

func (s *Store) GetStageCountry(ctx context.Context, stageID, countryID int64) (models.StageCountry, error) {
	sc := models.StageCountry{StageID: stageID, CountryID: countryID}
	var order sql.NullInt64
	err := s.q.QueryRowContext(ctx, `
		SELECT sort_order FROM stage_country WHERE stage_id = $1 AND country_id = $2
	`, stageID, countryID).Scan(&order)
	if isNoRows(err) {
		return models.StageCountry{}, notFound("stage country", [2]int64{stageID, countryID})
	}
	if err != nil {
		return models.StageCountry{}, fail("query stage country", err)
	}
	sc.Order = intPtr(order)
	return sc, nil
}

func (s *Store) CreateStageCountry(ctx context.Context, sc models.StageCountry) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO stage_country (stage_id, country_id, sort_order)
		VALUES ($1, $2, $3)
	`, sc.StageID, sc.CountryID, nullInt(sc.Order))
	if err != nil {
		return fail("insert stage country", err)
	}
	return nil
}

func (s *Store) UpdateStageCountryOrder(ctx context.Context, stageID, countryID int64, order int) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE stage_country SET sort_order = $1
		WHERE stage_id = $2 AND country_id = $3
	`, order, stageID, countryID)
	if err != nil {
		return fail("update stage country", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fail("update stage country", err)
	}
	if n == 0 {
		return notFound("stage country", [2]int64{stageID, countryID})
	}
	return nil
}

// DeleteStageCountries removes the whole roster of a stage.
func (s *Store) DeleteStageCountries(ctx context.Context, stageID int64) (int64, error) {
	res, err := s.q.ExecContext(ctx, `DELETE FROM stage_country WHERE stage_id = $1`, stageID)
	if err != nil {
		return 0, fail("delete stage countries", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fail("delete stage countries", err)
	}
	return n, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
