// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/handlers"
	"github.com/danielhkuo/eurovision-table/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	stageHandler := handlers.NewStageHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	rosterHandler := handlers.NewRosterHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))

	// Stages and standings
	mux.HandleFunc("GET /stages", middleware.WithLogging(stageHandler.ListStages))
	mux.HandleFunc("GET /stages/{id}", middleware.WithLogging(stageHandler.GetStage))
	mux.HandleFunc("GET /stages/{id}/ranking", middleware.WithLogging(stageHandler.GetRanking))
	mux.HandleFunc("GET /stages/{id}/votes", middleware.WithLogging(stageHandler.GetVotes))
	mux.HandleFunc("GET /stages/{id}/export", middleware.WithLogging(stageHandler.ExportStage))

	// Voting (X-User-ID)
	mux.HandleFunc("POST /stages/{id}/grades", middleware.WithLogging(votingHandler.SubmitGrade))
	mux.HandleFunc("GET /stages/{id}/my-grades", middleware.WithLogging(votingHandler.GetMyGrades))

	// Admin (X-Admin-Key)
	mux.HandleFunc("POST /stages", middleware.WithLogging(stageHandler.CreateStage))
	mux.HandleFunc("POST /stages/{id}/roster", middleware.WithLogging(rosterHandler.LoadRoster))
	mux.HandleFunc("PUT /stages/{id}/roster/{country_id}", middleware.WithLogging(rosterHandler.ReorderCountry))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("eurovision-table API v1"))
	})

	return mux
}
