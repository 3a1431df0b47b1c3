// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/ledger"
	"github.com/danielhkuo/eurovision-table/middleware"
	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/ranking"
	"github.com/danielhkuo/eurovision-table/store"
)

type VotingHandler struct {
	store   *store.Store
	ledger  *ledger.Ledger
	ranking *ranking.Engine
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	s := store.New(db)
	return &VotingHandler{
		store:   s,
		ledger:  ledger.New(s),
		ranking: ranking.New(s),
	}
}

// SubmitGrade handles POST /stages/{id}/grades
// Appends a grade and returns the recomputed stage ranking.
func (h *VotingHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, ok := currentUser(w, r, h.store)
	if !ok {
		return
	}

	var req models.SubmitGradeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CountryID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "country_id is required")
		return
	}

	value, err := ledger.ParseGrade(req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	grade, err := h.ledger.RecordGrade(r.Context(), user.ID, stageID, req.CountryID, value)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("grade recorded",
		"grade_id", grade.ID,
		"user_id", user.ID,
		"stage_id", stageID,
		"country_id", req.CountryID,
		"value", value,
	)

	standing, err := h.ranking.StageRanking(r.Context(), stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitGradeResponse{
		Grade:   grade,
		Ranking: standing,
	})
}

// GetMyGrades handles GET /stages/{id}/my-grades
// Returns country_id -> current grade; ungraded countries are absent.
func (h *VotingHandler) GetMyGrades(w http.ResponseWriter, r *http.Request) {
	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, ok := currentUser(w, r, h.store)
	if !ok {
		return
	}

	if _, err := h.store.GetStage(r.Context(), stageID); err != nil {
		writeError(w, err)
		return
	}

	grades, err := h.ledger.CurrentGradesForUserStage(r.Context(), user.ID, stageID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, grades)
}
