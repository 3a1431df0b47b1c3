// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/middleware"
	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/report"
	"github.com/danielhkuo/eurovision-table/roster"
	"github.com/danielhkuo/eurovision-table/store"
)

// maxRosterUpload caps roster uploads
const maxRosterUpload = 1 << 20

// rosterParser reads entries from an uploaded roster file
type rosterParser func(io.Reader) ([]roster.Entry, error)

type RosterHandler struct {
	store   *store.Store
	manager *roster.Manager
	cfg     cliparse.Config
}

func NewRosterHandler(db *sql.DB, cfg cliparse.Config) *RosterHandler {
	s := store.New(db)
	return &RosterHandler{store: s, manager: roster.New(roster.FromStore(s)), cfg: cfg}
}

// LoadRoster handles POST /stages/{id}/roster?clear=true (admin)
// Accepts CSV or .xlsx as the raw body or as a multipart "file" field.
func (h *RosterHandler) LoadRoster(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	clearExisting, _ := strconv.ParseBool(r.URL.Query().Get("clear"))

	body, parse, err := rosterUpload(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	defer body.Close()

	entries, err := parse(body)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.manager.LoadRoster(r.Context(), stageID, entries, clearExisting)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("roster imported", "stage_id", stageID, "added", result.Added, "clear", clearExisting)

	middleware.JSONResponse(w, http.StatusOK, models.LoadRosterResponse{Added: result.Added})
}

// ReorderCountry handles PUT /stages/{id}/roster/{country_id} (admin)
func (h *RosterHandler) ReorderCountry(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	stageID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	countryID, ok := pathID(w, r, "country_id")
	if !ok {
		return
	}

	var req models.ReorderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	order, err := roster.ParseOrder(req.Order)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.manager.ReorderCountry(r.Context(), stageID, countryID, order); err != nil {
		writeError(w, err)
		return
	}

	sc, err := h.store.GetStageCountry(r.Context(), stageID, countryID)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("country reordered", "stage_id", stageID, "country_id", countryID, "order", order)

	middleware.JSONResponse(w, http.StatusOK, sc)
}

// rosterUpload picks the upload body and its parser. Workbooks are detected
// by content type or, for multipart uploads, by the .xlsx file extension.
func rosterUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, rosterParser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRosterUpload)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, nil, fmt.Errorf("file field is required")
		}
		if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") ||
			header.Header.Get("Content-Type") == report.ContentType {
			return file, roster.ParseXLSX, nil
		}
		return file, roster.ParseCSV, nil
	}

	if strings.HasPrefix(contentType, report.ContentType) {
		return r.Body, roster.ParseXLSX, nil
	}
	return r.Body, roster.ParseCSV, nil
}
