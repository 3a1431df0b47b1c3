// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/danielhkuo/eurovision-table/auth"
	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/middleware"
	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/store"
)

type UserHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: store.New(db), cfg: cfg}
}

// Login handles POST /login
// Finds or creates the user by username; there is no password.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	username := auth.NormalizeUsername(req.Username)
	err := validation.Validate(username,
		validation.Required.Error("username is required"),
		validation.RuneLength(1, 64).Error("username must be at most 64 characters"),
	)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.FindOrCreateUser(r.Context(), username)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}
