// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/eurovision-table/models"
)

func TestWorkbook(t *testing.T) {
	one, two := 1, 2
	favorite := int64(10)
	offRoster := int64(99)

	f, err := Workbook(Standings{
		Stage: models.Stage{ID: 1, DisplayName: "Final"},
		Roster: []models.RosterCountry{
			{Country: models.Country{ID: 11, DisplayName: "Finland", Artist: "Käärijä", Song: "Cha Cha Cha"}, Order: &one},
			{Country: models.Country{ID: 10, DisplayName: "Sweden", Artist: "Loreen", Song: "Tattoo"}, Order: &two},
		},
		Ranking: []models.RankingEntry{
			{CountryID: 10, Total: 17},
			{CountryID: 11, Total: 8},
		},
		Votes: []models.UserVoteSummary{
			{UserID: 1, Username: "alice", VoteSummary: models.VoteSummary{VoteCount: 2, FavoriteCountryID: &favorite}},
			{UserID: 2, Username: "bob", VoteSummary: models.VoteSummary{VoteCount: 1, FavoriteCountryID: &offRoster}},
			{UserID: 3, Username: "carol"},
		},
	})
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []string{SheetRanking, SheetRunningOrder, SheetVotes}, reopened.GetSheetList())

	ranking, err := reopened.GetRows(SheetRanking)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Place", "Country", "Artist", "Song", "Total"},
		{"1", "Sweden", "Loreen", "Tattoo", "17"},
		{"2", "Finland", "Käärijä", "Cha Cha Cha", "8"},
	}, ranking)

	running, err := reopened.GetRows(SheetRunningOrder)
	require.NoError(t, err)
	require.Len(t, running, 3)
	assert.Equal(t, []string{"1", "Finland", "Käärijä", "Cha Cha Cha"}, running[1])

	votes, err := reopened.GetRows(SheetVotes)
	require.NoError(t, err)
	require.Len(t, votes, 4)
	assert.Equal(t, []string{"alice", "2", "Sweden"}, votes[1])
	assert.Equal(t, []string{"bob", "1", "99"}, votes[2])
	assert.Equal(t, []string{"carol", "0"}, votes[3])
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := Workbook(Standings{Stage: models.Stage{ID: 1, DisplayName: "Final"}})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetRanking)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
