// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/eurovision-table/models"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the entity store. A Store handed to a WithTx callback is bound to
// that transaction.
type Store struct {
	db *sql.DB
	q  querier
}

func New(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// WithTx runs fn inside a single transaction. The transaction commits only if
// fn returns nil. Nested calls reuse the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fail("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fail("commit transaction", err)
	}
	return nil
}

func fail(op string, err error) error {
	return &models.PersistenceError{Op: op, Err: err}
}

func notFound(kind string, key any) error {
	return fmt.Errorf("%s %v: %w", kind, key, models.ErrNotFound)
}

// Counts holds row totals used for seed reporting.
type Counts struct {
	Users          int
	Countries      int
	Stages         int
	StageCountries int
	Grades         int
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.q.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM app_user),
			(SELECT COUNT(*) FROM country),
			(SELECT COUNT(*) FROM stage),
			(SELECT COUNT(*) FROM stage_country),
			(SELECT COUNT(*) FROM grade)
	`).Scan(&c.Users, &c.Countries, &c.Stages, &c.StageCountries, &c.Grades)
	if err != nil {
		return Counts{}, fail("count entities", err)
	}
	return c, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
