// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"

	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/store"
)

// RosterStore is the storage a Manager writes through. WithTx runs fn
// against a transaction-scoped RosterStore and rolls back when fn fails.
type RosterStore interface {
	WithTx(ctx context.Context, fn func(tx RosterStore) error) error
	GetStage(ctx context.Context, id int64) (models.Stage, error)
	DeleteStageCountries(ctx context.Context, stageID int64) (int64, error)
	FindCountryByName(ctx context.Context, name string) (models.Country, error)
	CreateCountry(ctx context.Context, c models.Country) (models.Country, error)
	UpdateCountry(ctx context.Context, c models.Country) error
	GetStageCountry(ctx context.Context, stageID, countryID int64) (models.StageCountry, error)
	CreateStageCountry(ctx context.Context, sc models.StageCountry) error
	UpdateStageCountryOrder(ctx context.Context, stageID, countryID int64, order int) error
}

// FromStore adapts the SQL store. Nested transactions reuse the outer one.
func FromStore(s *store.Store) RosterStore {
	return sqlStore{s}
}

type sqlStore struct {
	*store.Store
}

func (s sqlStore) WithTx(ctx context.Context, fn func(tx RosterStore) error) error {
	return s.Store.WithTx(ctx, func(tx *store.Store) error {
		return fn(sqlStore{tx})
	})
}
