// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http/httptest"
	"testing"
)

func TestValidateAdminKey(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		expected string
		wantErr  bool
	}{
		{name: "matching key", provided: "secret", expected: "secret"},
		{name: "wrong key", provided: "guess", expected: "secret", wantErr: true},
		{name: "empty provided", provided: "", expected: "secret", wantErr: true},
		{name: "unconfigured key", provided: "", expected: "", wantErr: true},
		{name: "case matters", provided: "Secret", expected: "secret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.provided, tt.expected)
			if tt.wantErr && err != ErrInvalidAdminKey {
				t.Errorf("Expected ErrInvalidAdminKey, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestUserIDFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    int64
		wantErr error
	}{
		{name: "valid id", header: "42", want: 42},
		{name: "surrounding spaces", header: " 7 ", want: 7},
		{name: "missing header", header: "", wantErr: ErrMissingUser},
		{name: "not a number", header: "alice", wantErr: ErrInvalidUser},
		{name: "zero", header: "0", wantErr: ErrInvalidUser},
		{name: "negative", header: "-3", wantErr: ErrInvalidUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/stages/1", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}

			got, err := UserIDFromRequest(req)
			if err != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  Alice "); got != "Alice" {
		t.Errorf("Expected %q, got %q", "Alice", got)
	}
	if NormalizeUsername("alice") == NormalizeUsername("Alice") {
		t.Error("Usernames should stay case-sensitive")
	}
}
