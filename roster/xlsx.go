// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/eurovision-table/models"
)

// ParseXLSX reads roster entries from the first worksheet of a workbook.
// The sheet follows the same header rules as ParseCSV. Blank rows are
// skipped; each entry keeps its sheet row number.
func ParseXLSX(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedEntry, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &models.EntryError{Row: 0, Field: "header", Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedEntry, err)
	}
	if len(rows) == 0 {
		return nil, &models.EntryError{Row: 0, Field: "header", Reason: "sheet is empty"}
	}

	columns, err := readHeader(rows[0])
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for i, record := range rows {
		if i == 0 || blank(record) {
			continue
		}
		entry := columns.entry(record)
		entry.Row = i + 1
		entries = append(entries, entry)
	}
	return entries, nil
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
