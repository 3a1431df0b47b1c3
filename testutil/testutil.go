// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/eurovision-table/cliparse"
	"github.com/danielhkuo/eurovision-table/db"
)

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "test.db",
		AdminKey:     TestAdminKey,
	}
}

// CreateTestUser inserts a user and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO app_user (username) VALUES ($1) RETURNING id
	`, username).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CreateTestStage inserts a stage and returns its id
func CreateTestStage(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO stage (display_name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test stage: %v", err)
	}
	return id
}

// CreateTestCountry inserts a country with placeholder artist and song
func CreateTestCountry(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO country (display_name, artist, song) VALUES ($1, $2, $3) RETURNING id
	`, name, "Artist "+name, "Song "+name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test country: %v", err)
	}
	return id
}

// AddToRoster places a country in a stage at the given order
func AddToRoster(t *testing.T, conn *sql.DB, stageID, countryID int64, order int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO stage_country (stage_id, country_id, sort_order) VALUES ($1, $2, $3)
	`, stageID, countryID, order)
	if err != nil {
		t.Fatalf("Failed to add country to roster: %v", err)
	}
}

// AddTestGrade appends a ledger row with an explicit timestamp
func AddTestGrade(t *testing.T, conn *sql.DB, userID, stageID, countryID int64, value int, at time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO grade (user_id, stage_id, country_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, userID, stageID, countryID, value, at.UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test grade: %v", err)
	}
	return id
}

// CountRows returns the number of rows in a table matching an optional
// stage filter (stageID 0 counts all rows)
func CountRows(t *testing.T, conn *sql.DB, table string, stageID int64) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	args := []any{}
	if stageID != 0 {
		query += " WHERE stage_id = $1"
		args = append(args, stageID)
	}

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// UserHeader returns the identity header for a user id
func UserHeader(userID int64) map[string]string {
	return map[string]string{"X-User-ID": strconv.FormatInt(userID, 10)}
}

// AdminHeader returns the admin key header for GetTestConfig
func AdminHeader() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
