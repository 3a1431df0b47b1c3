// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "github.com/danielhkuo/eurovision-table/models"

// Key identifies the triple a grade belongs to.
type Key struct {
	UserID    int64
	StageID   int64
	CountryID int64
}

func KeyOf(g models.Grade) Key {
	return Key{UserID: g.UserID, StageID: g.StageID, CountryID: g.CountryID}
}

// Newer reports whether a supersedes b: later timestamp wins, equal
// timestamps go to the higher id.
func Newer(a, b models.Grade) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID > b.ID
}

// Latest returns the current grade among rows of a single triple.
func Latest(grades []models.Grade) (models.Grade, bool) {
	if len(grades) == 0 {
		return models.Grade{}, false
	}

	latest := grades[0]
	for _, g := range grades[1:] {
		if Newer(g, latest) {
			latest = g
		}
	}
	return latest, true
}

// Resolve collapses ledger rows to the current grade of every triple.
func Resolve(grades []models.Grade) map[Key]models.Grade {
	current := make(map[Key]models.Grade)
	for _, g := range grades {
		key := KeyOf(g)
		if prev, ok := current[key]; !ok || Newer(g, prev) {
			current[key] = g
		}
	}
	return current
}
