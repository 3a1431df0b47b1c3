// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/danielhkuo/eurovision-table/ledger"
	"github.com/danielhkuo/eurovision-table/models"
)

// StageStore is the slice of the entity store the engine reads.
type StageStore interface {
	GetStage(ctx context.Context, id int64) (models.Stage, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListStageCountries(ctx context.Context, stageID int64) ([]models.RosterCountry, error)
	ListStageGrades(ctx context.Context, stageID int64) ([]models.Grade, error)
}

// Engine computes standings on every call; nothing is cached.
type Engine struct {
	store StageStore
}

func New(store StageStore) *Engine {
	return &Engine{store: store}
}

// StageRanking returns the stage's countries by total of current grades,
// highest first. Countries nobody graded are left out.
func (e *Engine) StageRanking(ctx context.Context, stageID int64) ([]models.RankingEntry, error) {
	if _, err := e.store.GetStage(ctx, stageID); err != nil {
		return nil, err
	}

	roster, err := e.store.ListStageCountries(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	grades, err := e.store.ListStageGrades(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grades: %w", err)
	}

	return Rank(roster, grades), nil
}

// DisplayOrderForStage returns roster country ids in performance order.
func (e *Engine) DisplayOrderForStage(ctx context.Context, stageID int64) ([]int64, error) {
	if _, err := e.store.GetStage(ctx, stageID); err != nil {
		return nil, err
	}

	roster, err := e.store.ListStageCountries(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	ids := make([]int64, len(roster))
	for i, rc := range roster {
		ids[i] = rc.ID
	}
	return ids, nil
}

// UserVoteSummary maps every known user to their vote count and favorite
// country in the stage. Users without grades have a zero count and no
// favorite.
func (e *Engine) UserVoteSummary(ctx context.Context, stageID int64) (map[int64]models.VoteSummary, error) {
	breakdown, err := e.VoteBreakdown(ctx, stageID)
	if err != nil {
		return nil, err
	}

	summary := make(map[int64]models.VoteSummary, len(breakdown))
	for _, u := range breakdown {
		summary[u.UserID] = u.VoteSummary
	}
	return summary, nil
}

// VoteBreakdown is UserVoteSummary as a list ordered by user id, with
// usernames attached for display.
func (e *Engine) VoteBreakdown(ctx context.Context, stageID int64) ([]models.UserVoteSummary, error) {
	if _, err := e.store.GetStage(ctx, stageID); err != nil {
		return nil, err
	}

	users, err := e.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	grades, err := e.store.ListStageGrades(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grades: %w", err)
	}

	return Summarize(users, grades), nil
}

// Rank sums each user's current grade per roster country. Grades for
// countries outside the roster are ignored. Ties are ordered by country id
// ascending.
func Rank(roster []models.RosterCountry, grades []models.Grade) []models.RankingEntry {
	totals := make(map[int64]int, len(roster))
	for _, rc := range roster {
		totals[rc.ID] = 0
	}

	for key, g := range ledger.Resolve(grades) {
		if _, onRoster := totals[key.CountryID]; onRoster {
			totals[key.CountryID] += g.Value
		}
	}

	entries := []models.RankingEntry{}
	for countryID, total := range totals {
		if total == 0 {
			continue
		}
		entries = append(entries, models.RankingEntry{CountryID: countryID, Total: total})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].CountryID < entries[j].CountryID
	})

	return entries
}

// Summarize counts distinct graded countries per user and picks the
// country with the highest current grade. Equal top grades go to the lowest
// country id.
func Summarize(users []models.User, grades []models.Grade) []models.UserVoteSummary {
	byUser := make(map[int64]*models.UserVoteSummary, len(users))
	best := make(map[int64]int)

	summaries := make([]models.UserVoteSummary, len(users))
	for i, u := range users {
		summaries[i] = models.UserVoteSummary{UserID: u.ID, Username: u.Username}
		byUser[u.ID] = &summaries[i]
	}

	for key, g := range ledger.Resolve(grades) {
		s, ok := byUser[key.UserID]
		if !ok {
			continue
		}
		s.VoteCount++

		if s.FavoriteCountryID == nil ||
			g.Value > best[key.UserID] ||
			(g.Value == best[key.UserID] && key.CountryID < *s.FavoriteCountryID) {
			countryID := key.CountryID
			s.FavoriteCountryID = &countryID
			best[key.UserID] = g.Value
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UserID < summaries[j].UserID
	})
	return summaries
}
