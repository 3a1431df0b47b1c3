// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/eurovision-table/models"
)

// Sheet names, in workbook order
const (
	SheetRanking      = "Ranking"
	SheetRunningOrder = "Running order"
	SheetVotes        = "Votes"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Standings is everything exported for one stage.
type Standings struct {
	Stage   models.Stage
	Roster  []models.RosterCountry
	Ranking []models.RankingEntry
	Votes   []models.UserVoteSummary
}

// Workbook renders the standings as three sheets: the ranking with places,
// the running order, and the per-user vote summary.
func Workbook(s Standings) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetRanking); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetRunningOrder, SheetVotes} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
	}

	byID := make(map[int64]models.Country, len(s.Roster))
	for _, rc := range s.Roster {
		byID[rc.ID] = rc.Country
	}
	name := func(id int64) string {
		if c, ok := byID[id]; ok {
			return c.DisplayName
		}
		return strconv.FormatInt(id, 10)
	}

	ranking := [][]interface{}{}
	for i, e := range s.Ranking {
		c := byID[e.CountryID]
		ranking = append(ranking, []interface{}{i + 1, name(e.CountryID), c.Artist, c.Song, e.Total})
	}

	running := [][]interface{}{}
	for _, rc := range s.Roster {
		var order interface{}
		if rc.Order != nil {
			order = *rc.Order
		}
		running = append(running, []interface{}{order, rc.DisplayName, rc.Artist, rc.Song})
	}

	votes := [][]interface{}{}
	for _, v := range s.Votes {
		var favorite interface{}
		if v.FavoriteCountryID != nil {
			favorite = name(*v.FavoriteCountryID)
		}
		votes = append(votes, []interface{}{v.Username, v.VoteCount, favorite})
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetRanking, []interface{}{"Place", "Country", "Artist", "Song", "Total"}, ranking},
		{SheetRunningOrder, []interface{}{"Order", "Country", "Artist", "Song"}, running},
		{SheetVotes, []interface{}{"User", "Votes", "Favorite"}, votes},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
