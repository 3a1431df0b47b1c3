// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/ledger"
	"github.com/danielhkuo/eurovision-table/middleware"
	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/ranking"
	"github.com/danielhkuo/eurovision-table/report"
	"github.com/danielhkuo/eurovision-table/store"
)

type StageHandler struct {
	store   *store.Store
	ledger  *ledger.Ledger
	ranking *ranking.Engine
	cfg     cliparse.Config
}

func NewStageHandler(db *sql.DB, cfg cliparse.Config) *StageHandler {
	s := store.New(db)
	return &StageHandler{
		store:   s,
		ledger:  ledger.New(s),
		ranking: ranking.New(s),
		cfg:     cfg,
	}
}

// ListStages handles GET /stages
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.store.ListStages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stages)
}

// CreateStage handles POST /stages (admin)
// Returns the existing stage if one already has this name.
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	var req models.CreateStageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name is required")
		return
	}

	stage, err := h.store.FindOrCreateStage(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("stage ready", "stage_id", stage.ID, "display_name", stage.DisplayName)

	middleware.JSONResponse(w, http.StatusCreated, stage)
}

// GetStage handles GET /stages/{id}
// Returns the roster in performance order with the caller's current grades,
// plus live standings and the per-user vote summary.
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, ok := currentUser(w, r, h.store)
	if !ok {
		return
	}

	stage, err := h.store.GetStage(r.Context(), stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		roster   []models.RosterCountry
		myGrades map[int64]int
		standing []models.RankingEntry
		votes    []models.UserVoteSummary
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		roster, err = h.store.ListStageCountries(ctx, stageID)
		return err
	})
	g.Go(func() (err error) {
		myGrades, err = h.ledger.CurrentGradesForUserStage(ctx, user.ID, stageID)
		return err
	})
	g.Go(func() (err error) {
		standing, err = h.ranking.StageRanking(ctx, stageID)
		return err
	})
	g.Go(func() (err error) {
		votes, err = h.ranking.VoteBreakdown(ctx, stageID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(w, err)
		return
	}

	countries := make([]models.StageCountryView, len(roster))
	for i, rc := range roster {
		countries[i] = models.StageCountryView{RosterCountry: rc}
		if value, graded := myGrades[rc.ID]; graded {
			countries[i].Grade = &value
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StageView{
		Stage:     stage,
		Countries: countries,
		Ranking:   standing,
		Votes:     votes,
	})
}

// GetRanking handles GET /stages/{id}/ranking
func (h *StageHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.ranking.StageRanking(r.Context(), stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// GetVotes handles GET /stages/{id}/votes
func (h *StageHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	votes, err := h.ranking.VoteBreakdown(r.Context(), stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// ExportStage handles GET /stages/{id}/export
// Streams the standings as an .xlsx workbook.
func (h *StageHandler) ExportStage(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	standings := report.Standings{}
	var err error
	standings.Stage, err = h.store.GetStage(r.Context(), stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		standings.Roster, err = h.store.ListStageCountries(ctx, stageID)
		return err
	})
	g.Go(func() (err error) {
		standings.Ranking, err = h.ranking.StageRanking(ctx, stageID)
		return err
	})
	g.Go(func() (err error) {
		standings.Votes, err = h.ranking.VoteBreakdown(ctx, stageID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(w, err)
		return
	}

	f, err := report.Workbook(standings)
	if err != nil {
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="stage-%d-standings.xlsx"`, stageID))
	if err := f.Write(w); err != nil {
		slog.Error("failed to write workbook", "stage_id", stageID, "error", err)
	}
}
