// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Grade bounds (inclusive)
const (
	MinGrade = 1
	MaxGrade = 12
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
}

type CreateStageRequest struct {
	DisplayName string `json:"display_name"`
}

// Value is decoded loosely: form-style string values and JSON numbers are both accepted.
type SubmitGradeRequest struct {
	CountryID int64       `json:"country_id"`
	Value     interface{} `json:"value"`
}

type ReorderRequest struct {
	Order interface{} `json:"order"`
}

// Response types

type LoginResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type SubmitGradeResponse struct {
	Grade   Grade          `json:"grade"`
	Ranking []RankingEntry `json:"ranking"`
}

type LoadRosterResponse struct {
	Added int `json:"added"`
}

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Country struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Artist      string `json:"artist"`
	Song        string `json:"song"`
}

type Stage struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// StageCountry places a country in a stage's performance order.
// Order is nil only for rows written outside the roster operations.
type StageCountry struct {
	StageID   int64 `json:"stage_id"`
	CountryID int64 `json:"country_id"`
	Order     *int  `json:"order"`
}

// RosterCountry is a country as it appears on a stage roster.
type RosterCountry struct {
	Country
	Order *int `json:"order"`
}

// Grade is one vote event; rows are never updated.
type Grade struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StageID   int64     `json:"stage_id"`
	CountryID int64     `json:"country_id"`
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Ranking types

type RankingEntry struct {
	CountryID int64 `json:"country_id"`
	Total     int   `json:"total"`
}

type VoteSummary struct {
	VoteCount         int    `json:"vote_count"`
	FavoriteCountryID *int64 `json:"favorite_country_id,omitempty"`
}

type UserVoteSummary struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	VoteSummary
}

// StageCountryView is one row of the stage page: roster entry plus the
// requesting user's current grade.
type StageCountryView struct {
	RosterCountry
	Grade *int `json:"grade,omitempty"`
}

type StageView struct {
	Stage     Stage              `json:"stage"`
	Countries []StageCountryView `json:"countries"`
	Ranking   []RankingEntry     `json:"ranking"`
	Votes     []UserVoteSummary  `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field,omitempty"`
}
