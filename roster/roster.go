// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/danielhkuo/eurovision-table/models"
)

// Entry is one roster line. Position <= 0 means "not supplied".
//
// Row is the line or sheet row the entry was read from, counting the header
// as row 1. Entries built in code leave it zero and are reported by their
// 1-based index in the batch instead.
type Entry struct {
	Country  string `json:"country"`
	Artist   string `json:"artist"`
	Song     string `json:"song"`
	Position int    `json:"position"`
	Row      int    `json:"-"`
}

func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Country, validation.Required.Error("country is required")),
		validation.Field(&e.Artist, validation.Required.Error("artist is required")),
		validation.Field(&e.Song, validation.Required.Error("song is required")),
	)
}

// Result reports how many countries joined the roster. Countries already on
// it that were only repositioned are not counted.
type Result struct {
	Added int `json:"added"`
}

// row is where the entry at batch index i came from.
func (e Entry) row(i int) int {
	if e.Row > 0 {
		return e.Row
	}
	return i + 1
}

type Manager struct {
	store RosterStore
}

func New(s RosterStore) *Manager {
	return &Manager{store: s}
}

// LoadRoster validates the whole batch, then applies it in one transaction.
// With clearExisting the stage's roster is emptied first.
func (m *Manager) LoadRoster(ctx context.Context, stageID int64, entries []Entry, clearExisting bool) (Result, error) {
	if err := ValidateEntries(entries); err != nil {
		return Result{}, err
	}

	var result Result
	err := m.store.WithTx(ctx, func(tx RosterStore) error {
		result = Result{}

		if _, err := tx.GetStage(ctx, stageID); err != nil {
			return err
		}

		if clearExisting {
			removed, err := tx.DeleteStageCountries(ctx, stageID)
			if err != nil {
				return err
			}
			slog.Info("roster cleared", "stage_id", stageID, "removed", removed)
		}

		for i, entry := range entries {
			position := entry.Position
			if position <= 0 {
				position = i + 1
			}

			country, err := upsertCountry(ctx, tx, entry)
			if err != nil {
				return fmt.Errorf("row %d: %w", entry.row(i), err)
			}

			added, err := upsertStageCountry(ctx, tx, stageID, country.ID, position)
			if err != nil {
				return fmt.Errorf("row %d: %w", entry.row(i), err)
			}
			if added {
				result.Added++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	slog.Info("roster loaded", "stage_id", stageID, "entries", len(entries), "added", result.Added)
	return result, nil
}

// ReorderCountry moves one country to a new position. Siblings keep their
// positions, so duplicates and gaps are possible.
func (m *Manager) ReorderCountry(ctx context.Context, stageID, countryID int64, newOrder int) error {
	if err := ValidateOrder(newOrder); err != nil {
		return err
	}

	err := m.store.UpdateStageCountryOrder(ctx, stageID, countryID, newOrder)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("stage %d country %d: %w", stageID, countryID, models.ErrAssociationNotFound)
	}
	return err
}

// ValidateEntries checks every entry and reports the first bad one. The
// reported row is the entry's source row when known, else its 1-based index.
func ValidateEntries(entries []Entry) error {
	for i, entry := range entries {
		err := entry.Validate()
		if err == nil {
			continue
		}

		entryErr := &models.EntryError{Row: entry.row(i), Field: "entry", Reason: err.Error()}
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			for _, field := range []string{"country", "artist", "song"} {
				if fe, ok := fieldErrs[field]; ok {
					entryErr.Field = field
					entryErr.Reason = fe.Error()
					break
				}
			}
		}
		return entryErr
	}
	return nil
}

// ParseOrder converts a loosely typed form or JSON value into a position.
// Anything that is not a positive integer fails with
// models.ErrInvalidOrderValue.
func ParseOrder(raw interface{}) (int, error) {
	n, err := models.ParseInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidOrderValue, err)
	}
	if err := ValidateOrder(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateOrder requires a positive position.
func ValidateOrder(order int) error {
	if err := validation.Validate(order, validation.Required, validation.Min(1)); err != nil {
		return fmt.Errorf("%w: got %d", models.ErrInvalidOrderValue, order)
	}
	return nil
}

// upsertCountry finds the country by display name, overwriting artist and
// song when it already exists.
func upsertCountry(ctx context.Context, tx RosterStore, entry Entry) (models.Country, error) {
	country, err := tx.FindCountryByName(ctx, entry.Country)
	if errors.Is(err, models.ErrNotFound) {
		return tx.CreateCountry(ctx, models.Country{
			DisplayName: entry.Country,
			Artist:      entry.Artist,
			Song:        entry.Song,
		})
	}
	if err != nil {
		return models.Country{}, err
	}

	country.Artist = entry.Artist
	country.Song = entry.Song
	if err := tx.UpdateCountry(ctx, country); err != nil {
		return models.Country{}, err
	}
	return country, nil
}

// upsertStageCountry reports whether a new association was created.
func upsertStageCountry(ctx context.Context, tx RosterStore, stageID, countryID int64, position int) (bool, error) {
	_, err := tx.GetStageCountry(ctx, stageID, countryID)
	if errors.Is(err, models.ErrNotFound) {
		err = tx.CreateStageCountry(ctx, models.StageCountry{
			StageID:   stageID,
			CountryID: countryID,
			Order:     &position,
		})
		return err == nil, err
	}
	if err != nil {
		return false, err
	}

	return false, tx.UpdateStageCountryOrder(ctx, stageID, countryID, position)
}
