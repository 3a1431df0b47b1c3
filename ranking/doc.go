// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking aggregates current grades into stage standings.

# Stage Ranking

	entries, err := engine.StageRanking(ctx, stageID)

Each roster country's total is the sum over users of that user's current
grade (see package ledger), so revoting replaces a user's contribution
instead of adding to it. Countries with a zero total are omitted. Order is
total descending, then country id ascending.

# Display Order

DisplayOrderForStage lists roster countries by performance position. It is
unrelated to popularity.

# Vote Summary

UserVoteSummary reports, per user, how many countries they graded in the
stage and which country got their highest grade (lowest country id on ties).

Everything is recomputed from the ledger on each call.
*/
package ranking
