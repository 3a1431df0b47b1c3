// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/eurovision-table/models"
)

func (s *Store) GetCountry(ctx context.Context, id int64) (models.Country, error) {
	var c models.Country
	err := s.q.QueryRowContext(ctx, `
		SELECT id, display_name, artist, song FROM country WHERE id = $1
	`, id).Scan(&c.ID, &c.DisplayName, &c.Artist, &c.Song)
	if isNoRows(err) {
		return models.Country{}, notFound("country", id)
	}
	if err != nil {
		return models.Country{}, fail("query country", err)
	}
	return c, nil
}

// FindCountryByName looks a country up by its display name, the key used
// for imports.
func (s *Store) FindCountryByName(ctx context.Context, name string) (models.Country, error) {
	var c models.Country
	err := s.q.QueryRowContext(ctx, `
		SELECT id, display_name, artist, song FROM country WHERE display_name = $1
	`, name).Scan(&c.ID, &c.DisplayName, &c.Artist, &c.Song)
	if isNoRows(err) {
		return models.Country{}, notFound("country", name)
	}
	if err != nil {
		return models.Country{}, fail("query country", err)
	}
	return c, nil
}

func (s *Store) CreateCountry(ctx context.Context, c models.Country) (models.Country, error) {
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO country (display_name, artist, song)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.DisplayName, c.Artist, c.Song).Scan(&c.ID)
	if err != nil {
		return models.Country{}, fail("insert country", err)
	}
	return c, nil
}

// UpdateCountry overwrites artist and song for an existing country.
func (s *Store) UpdateCountry(ctx context.Context, c models.Country) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE country SET artist = $1, song = $2 WHERE id = $3
	`, c.Artist, c.Song, c.ID)
	if err != nil {
		return fail("update country", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fail("update country", err)
	}
	if n == 0 {
		return notFound("country", c.ID)
	}
	return nil
}
