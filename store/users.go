// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/eurovision-table/models"
)

// FindOrCreateUser returns the user with the given username, creating it on
// first use. Usernames are case-sensitive.
func (s *Store) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO app_user (username) VALUES ($1)
		ON CONFLICT (username) DO NOTHING
	`, username)
	if err != nil {
		return models.User{}, fail("insert user", err)
	}

	return s.FindUserByUsername(ctx, username)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.q.QueryRowContext(ctx, `
		SELECT id, username FROM app_user WHERE username = $1
	`, username).Scan(&u.ID, &u.Username)
	if isNoRows(err) {
		return models.User{}, notFound("user", username)
	}
	if err != nil {
		return models.User{}, fail("query user", err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := s.q.QueryRowContext(ctx, `
		SELECT id, username FROM app_user WHERE id = $1
	`, id).Scan(&u.ID, &u.Username)
	if isNoRows(err) {
		return models.User{}, notFound("user", id)
	}
	if err != nil {
		return models.User{}, fail("query user", err)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, username FROM app_user ORDER BY id`)
	if err != nil {
		return nil, fail("query users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fail("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("query users", err)
	}
	return users, nil
}
