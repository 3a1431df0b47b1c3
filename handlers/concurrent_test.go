// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/eurovision-table/models"
	"github.com/danielhkuo/eurovision-table/testutil"
)

// TestConcurrentGradeSubmissions verifies that simultaneous grades from
// different users are all kept and the ranking sums every current grade
func TestConcurrentGradeSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(db, cfg)
	stageHandler := NewStageHandler(db, cfg)

	stageID := testutil.CreateTestStage(t, db, "Final")
	sweden := testutil.CreateTestCountry(t, db, "Sweden")
	testutil.AddToRoster(t, db, stageID, sweden, 1)
	stagePath := strconv.FormatInt(stageID, 10)

	numUsers := 10
	userIDs := make([]int64, numUsers)
	for i := 0; i < numUsers; i++ {
		userIDs[i] = testutil.CreateTestUser(t, db, "user"+strconv.Itoa(i))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.SubmitGradeRequest{CountryID: sweden, Value: idx + 1}
			req := testutil.MakeRequest("POST", "/stages/"+stagePath+"/grades", body, testutil.UserHeader(userIDs[idx]))
			req.SetPathValue("id", stagePath)
			w := httptest.NewRecorder()

			votingHandler.SubmitGrade(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numUsers {
		t.Errorf("Expected %d successful submissions, got %d", numUsers, successCount.Load())
	}

	if n := testutil.CountRows(t, db, "grade", stageID); n != numUsers {
		t.Errorf("Expected %d grade rows, got %d", numUsers, n)
	}

	req := testutil.MakeRequest("GET", "/stages/"+stagePath+"/ranking", nil, nil)
	req.SetPathValue("id", stagePath)
	w := httptest.NewRecorder()
	stageHandler.GetRanking(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var ranking []models.RankingEntry
	testutil.AssertJSON(t, w, &ranking)

	// 1 + 2 + ... + 10
	if len(ranking) != 1 || ranking[0].Total != 55 {
		t.Errorf("Expected Sweden total 55, got %+v", ranking)
	}
}
