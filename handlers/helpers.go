// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/eurovision-table/auth"
	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/middleware"
	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/store"
)

// pathID parses a positive integer path parameter
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// currentUser resolves the X-User-ID header to a known user
func currentUser(w http.ResponseWriter, r *http.Request, s *store.Store) (models.User, bool) {
	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return models.User{}, false
	}

	user, err := s.GetUser(r.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown user, please log in again")
		return models.User{}, false
	}
	if err != nil {
		writeError(w, err)
		return models.User{}, false
	}
	return user, true
}

// requireAdmin checks the X-Admin-Key header
func requireAdmin(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) bool {
	if err := auth.ValidateAdminKey(r.Header.Get(auth.HeaderAdminKey), cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// writeError maps domain errors onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	var entryErr *models.EntryError
	switch {
	case errors.As(err, &entryErr):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: entryErr.Error(),
			Row:     entryErr.Row,
			Field:   entryErr.Field,
		})
	case errors.Is(err, models.ErrInvalidGradeValue),
		errors.Is(err, models.ErrInvalidOrderValue),
		errors.Is(err, models.ErrMalformedEntry):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrAssociationNotFound),
		errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
