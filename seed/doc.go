// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed initializes stages, countries and stage rosters.

	err := seed.Run(ctx, store.New(conn), seed.Options{UseRealData: true})

Three stages are created: Semi-final 1, Semi-final 2 and Final. With real
data each stage gets its 2023 running order. Otherwise ten dummy countries
are each placed into one or two random stages, appended after the stage's
last position.

Every stage roster is cleared and reloaded through the roster package, all
in one transaction. Users and grades are untouched.
*/
package seed
