// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Request headers carrying identity
const (
	HeaderUserID   = "X-User-ID"
	HeaderAdminKey = "X-Admin-Key"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrMissingUser     = errors.New("X-User-ID header required")
	ErrInvalidUser     = errors.New("invalid user id")
)

// ValidateAdminKey compares the provided key against the configured one in
// constant time
func ValidateAdminKey(provided, expected string) error {
	if expected == "" {
		return ErrInvalidAdminKey
	}
	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// UserIDFromRequest reads the user id the client received at login.
// The id is trusted as-is; there is no password.
func UserIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if raw == "" {
		return 0, ErrMissingUser
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUser
	}
	return id, nil
}

// NormalizeUsername trims surrounding whitespace. Case is preserved;
// usernames are case-sensitive.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
