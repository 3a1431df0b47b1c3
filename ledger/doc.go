// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records grades and resolves each voter's current grade.

The grade table is an append-only log. Voting again for the same country in
the same stage adds a row; nothing is updated or deleted. The current grade
of a (user, stage, country) triple is the row with the latest timestamp,
with ties going to the highest id.

	l := ledger.New(store.New(conn))
	g, err := l.RecordGrade(ctx, userID, stageID, countryID, 10)
	value, ok, err := l.CurrentGrade(ctx, userID, stageID, countryID)

Resolve and Latest are pure functions over ledger rows and are shared with
the ranking package so both agree on what "current" means.
*/
package ledger
