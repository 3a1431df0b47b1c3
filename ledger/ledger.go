// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/danielhkuo/eurovision-table/models"
)

// GradeStore is the slice of the entity store the ledger reads and writes.
type GradeStore interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetStage(ctx context.Context, id int64) (models.Stage, error)
	GetCountry(ctx context.Context, id int64) (models.Country, error)
	AppendGrade(ctx context.Context, g models.Grade) (models.Grade, error)
	ListGradeHistory(ctx context.Context, userID, stageID, countryID int64) ([]models.Grade, error)
	ListUserStageGrades(ctx context.Context, userID, stageID int64) ([]models.Grade, error)
}

type Ledger struct {
	store GradeStore
	now   func() time.Time
}

func New(store GradeStore) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// WithClock returns a copy of the ledger that stamps grades using now.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	return &Ledger{store: l.store, now: now}
}

// RecordGrade appends a new grade event. Earlier votes for the same
// (user, stage, country) are kept; the newest one becomes current.
func (l *Ledger) RecordGrade(ctx context.Context, userID, stageID, countryID int64, value int) (models.Grade, error) {
	if err := ValidateGrade(value); err != nil {
		return models.Grade{}, err
	}

	if _, err := l.store.GetUser(ctx, userID); err != nil {
		return models.Grade{}, err
	}
	if _, err := l.store.GetStage(ctx, stageID); err != nil {
		return models.Grade{}, err
	}
	if _, err := l.store.GetCountry(ctx, countryID); err != nil {
		return models.Grade{}, err
	}

	g, err := l.store.AppendGrade(ctx, models.Grade{
		UserID:    userID,
		StageID:   stageID,
		CountryID: countryID,
		Value:     value,
		Timestamp: l.now(),
	})
	if err != nil {
		return models.Grade{}, fmt.Errorf("record grade: %w", err)
	}
	return g, nil
}

// CurrentGrade resolves the current value for one triple. ok is false when
// the user never graded the country in this stage.
func (l *Ledger) CurrentGrade(ctx context.Context, userID, stageID, countryID int64) (value int, ok bool, err error) {
	history, err := l.store.ListGradeHistory(ctx, userID, stageID, countryID)
	if err != nil {
		return 0, false, err
	}

	latest, ok := Latest(history)
	if !ok {
		return 0, false, nil
	}
	return latest.Value, true, nil
}

// CurrentGradesForUserStage maps country id to the user's current grade.
// Ungraded countries are absent, not zero.
func (l *Ledger) CurrentGradesForUserStage(ctx context.Context, userID, stageID int64) (map[int64]int, error) {
	history, err := l.store.ListUserStageGrades(ctx, userID, stageID)
	if err != nil {
		return nil, err
	}

	current := make(map[int64]int)
	for key, g := range Resolve(history) {
		current[key.CountryID] = g.Value
	}
	return current, nil
}

// ValidateGrade checks the 1-12 range. Required rejects zero, which the
// threshold rules treat as empty.
func ValidateGrade(value int) error {
	err := validation.Validate(value,
		validation.Required,
		validation.Min(models.MinGrade),
		validation.Max(models.MaxGrade),
	)
	if err != nil {
		return fmt.Errorf("%w: got %d", models.ErrInvalidGradeValue, value)
	}
	return nil
}
