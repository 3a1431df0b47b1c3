// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides request identity helpers.

# Users

Voters log in with a username only. The login response carries the numeric
user id, which clients send back on every voting request:

	X-User-ID: 42

	userID, err := auth.UserIDFromRequest(r)

The id is trusted without further checks.

# Admin Key

Roster management routes require the configured admin key:

	X-Admin-Key: <ADMIN_KEY>

	err := auth.ValidateAdminKey(r.Header.Get(auth.HeaderAdminKey), cfg.AdminKey)

Comparison is constant time.
*/
package auth
