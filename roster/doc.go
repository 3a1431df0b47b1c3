// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster maintains the ordered list of countries performing in a stage.

# Loading

	entries, err := roster.ParseCSV(file) // or roster.ParseXLSX
	result, err := manager.LoadRoster(ctx, stageID, entries, clearExisting)

The whole batch is validated before anything is written; a row missing
country, artist or song fails with a *models.EntryError naming the row.
Parsed entries carry the file line or sheet row they came from, so the
reported row matches what the admin sees in their spreadsheet.
Valid batches are applied in a single transaction.

Countries are matched by display name. A known country gets its artist and
song overwritten; an unknown one is created. Entries without a positive
position get their 1-based index in the batch.

# Reordering

	err := manager.ReorderCountry(ctx, stageID, countryID, 3)

Only the named row changes. Positions are not renumbered, so two countries
may share a position.
*/
package roster
