// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/testutil"
)

func TestCreateStage(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewStageHandler(db, cfg)

	tests := []struct {
		name           string
		headers        map[string]string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid stage",
			headers:        testutil.AdminHeader(),
			requestBody:    models.CreateStageRequest{DisplayName: " Final "},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "same name returns existing stage",
			headers:        testutil.AdminHeader(),
			requestBody:    models.CreateStageRequest{DisplayName: "Final"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			headers:        testutil.AdminHeader(),
			requestBody:    models.CreateStageRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong admin key",
			headers:        map[string]string{"X-Admin-Key": "nope"},
			requestBody:    models.CreateStageRequest{DisplayName: "Semi-final 1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no admin key",
			requestBody:    models.CreateStageRequest{DisplayName: "Semi-final 1"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/stages", tt.requestBody, tt.headers)
			w := httptest.NewRecorder()

			handler.CreateStage(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if w.Code == http.StatusCreated {
				var stage models.Stage
				testutil.AssertJSON(t, w, &stage)
				if stage.DisplayName != "Final" {
					t.Errorf("Expected display_name 'Final', got '%s'", stage.DisplayName)
				}
			}
		})
	}

	if n := testutil.CountRows(t, db, "stage", 0); n != 1 {
		t.Errorf("Expected 1 stage, got %d", n)
	}
}

func TestGetStage(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewStageHandler(db, cfg)

	alice := testutil.CreateTestUser(t, db, "alice")
	bob := testutil.CreateTestUser(t, db, "bob")
	stageID := testutil.CreateTestStage(t, db, "Final")
	sweden := testutil.CreateTestCountry(t, db, "Sweden")
	finland := testutil.CreateTestCountry(t, db, "Finland")
	testutil.AddToRoster(t, db, stageID, sweden, 2)
	testutil.AddToRoster(t, db, stageID, finland, 1)

	now := time.Now()
	testutil.AddTestGrade(t, db, alice, stageID, sweden, 12, now)
	testutil.AddTestGrade(t, db, bob, stageID, sweden, 5, now)

	stagePath := strconv.FormatInt(stageID, 10)
	req := testutil.MakeRequest("GET", "/stages/"+stagePath, nil, testutil.UserHeader(alice))
	req.SetPathValue("id", stagePath)
	w := httptest.NewRecorder()

	handler.GetStage(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.StageView
	testutil.AssertJSON(t, w, &view)

	if view.Stage.ID != stageID {
		t.Errorf("Expected stage %d, got %d", stageID, view.Stage.ID)
	}

	if len(view.Countries) != 2 {
		t.Fatalf("Expected 2 countries, got %d", len(view.Countries))
	}
	if view.Countries[0].ID != finland || view.Countries[1].ID != sweden {
		t.Errorf("Expected performance order [Finland, Sweden], got [%s, %s]",
			view.Countries[0].DisplayName, view.Countries[1].DisplayName)
	}
	if view.Countries[0].Grade != nil {
		t.Errorf("Expected no grade for Finland, got %d", *view.Countries[0].Grade)
	}
	if view.Countries[1].Grade == nil || *view.Countries[1].Grade != 12 {
		t.Errorf("Expected alice's grade 12 for Sweden, got %v", view.Countries[1].Grade)
	}

	if len(view.Ranking) != 1 || view.Ranking[0].CountryID != sweden || view.Ranking[0].Total != 17 {
		t.Errorf("Expected ranking [Sweden: 17], got %+v", view.Ranking)
	}

	if len(view.Votes) != 2 {
		t.Fatalf("Expected 2 vote summaries, got %d", len(view.Votes))
	}
	for _, v := range view.Votes {
		if v.VoteCount != 1 {
			t.Errorf("Expected 1 vote for %s, got %d", v.Username, v.VoteCount)
		}
		if v.FavoriteCountryID == nil || *v.FavoriteCountryID != sweden {
			t.Errorf("Expected favorite Sweden for %s", v.Username)
		}
	}
}

func TestGetStage_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewStageHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "alice")

	tests := []struct {
		name           string
		stageID        string
		headers        map[string]string
		expectedStatus int
	}{
		{"unknown stage", "9999", testutil.UserHeader(userID), http.StatusNotFound},
		{"invalid id", "abc", testutil.UserHeader(userID), http.StatusBadRequest},
		{"no user", "1", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/stages/"+tt.stageID, nil, tt.headers)
			req.SetPathValue("id", tt.stageID)
			w := httptest.NewRecorder()

			handler.GetStage(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestListStages(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewStageHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/stages", nil, nil)
	w := httptest.NewRecorder()
	handler.ListStages(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}

	testutil.CreateTestStage(t, db, "Semi-final 1")
	testutil.CreateTestStage(t, db, "Final")

	w = httptest.NewRecorder()
	handler.ListStages(w, testutil.MakeRequest("GET", "/stages", nil, nil))

	var stages []models.Stage
	testutil.AssertJSON(t, w, &stages)
	if len(stages) != 2 || stages[0].DisplayName != "Semi-final 1" {
		t.Errorf("Expected stages in creation order, got %+v", stages)
	}
}

func TestGetVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewStageHandler(db, cfg)

	alice := testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestUser(t, db, "bob")
	stageID := testutil.CreateTestStage(t, db, "Final")
	sweden := testutil.CreateTestCountry(t, db, "Sweden")
	testutil.AddTestGrade(t, db, alice, stageID, sweden, 8, time.Now())

	stagePath := strconv.FormatInt(stageID, 10)
	req := testutil.MakeRequest("GET", "/stages/"+stagePath+"/votes", nil, nil)
	req.SetPathValue("id", stagePath)
	w := httptest.NewRecorder()

	handler.GetVotes(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var votes []models.UserVoteSummary
	testutil.AssertJSON(t, w, &votes)

	if len(votes) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(votes))
	}
	if votes[0].Username != "alice" || votes[0].VoteCount != 1 {
		t.Errorf("Expected alice with 1 vote, got %+v", votes[0])
	}
	if votes[1].Username != "bob" || votes[1].VoteCount != 0 || votes[1].FavoriteCountryID != nil {
		t.Errorf("Expected bob with no votes, got %+v", votes[1])
	}
}
