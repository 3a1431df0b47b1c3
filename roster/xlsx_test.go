// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/eurovision-table/models"
)

// workbook builds an .xlsx file whose first sheet holds rows starting at A1.
func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Position", "Country", "Artist", "Song"},
		[]interface{}{3, "Spain", "Blanca Paloma", "Eaea"},
		[]interface{}{},
		[]interface{}{nil, "Italy", "Marco Mengoni", "Due vite"},
	)

	entries, err := ParseXLSX(buf)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Country: "Spain", Artist: "Blanca Paloma", Song: "Eaea", Position: 3, Row: 2},
		{Country: "Italy", Artist: "Marco Mengoni", Song: "Due vite", Row: 4},
	}, entries)
}

func TestParseXLSX_ErrorNamesSheetRow(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Country", "Artist", "Song"},
		[]interface{}{"Spain", "Blanca Paloma", "Eaea"},
		[]interface{}{},
		[]interface{}{},
		[]interface{}{"Italy", "", "Due vite"},
	)

	entries, err := ParseXLSX(buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	err = ValidateEntries(entries)
	var entryErr *models.EntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, 5, entryErr.Row)
	assert.Equal(t, "artist", entryErr.Field)
}

func TestParseXLSX_MissingColumn(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"country", "song"},
		[]interface{}{"Spain", "Eaea"},
	)

	_, err := ParseXLSX(buf)
	var entryErr *models.EntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, "artist", entryErr.Field)
}

func TestParseXLSX_NotAWorkbook(t *testing.T) {
	_, err := ParseXLSX(strings.NewReader("country,artist,song\n"))
	assert.ErrorIs(t, err, models.ErrMalformedEntry)
}
