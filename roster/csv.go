// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danielhkuo/eurovision-table/models"
)

// ParseCSV reads roster entries from CSV with a header row naming at least
// country, artist and song; position is optional. Header names are
// case-insensitive and column order is free. A position that is empty or
// not a number is treated as missing. Blank lines are skipped; each entry
// keeps the line it was read from.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.EntryError{Row: 0, Field: "header", Reason: "file is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedEntry, err)
	}

	columns, err := readHeader(header)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &models.EntryError{Row: parseErr.StartLine, Field: "entry", Reason: parseErr.Err.Error()}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedEntry, err)
		}

		entry := columns.entry(record)
		entry.Row, _ = reader.FieldPos(0)
		entries = append(entries, entry)
	}

	return entries, nil
}

// columnIndex maps a lower-cased header name to its column.
type columnIndex map[string]int

func readHeader(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{"country", "artist", "song"} {
		if _, ok := columns[required]; !ok {
			return nil, &models.EntryError{Row: 0, Field: required, Reason: "missing column in header"}
		}
	}
	return columns, nil
}

func (c columnIndex) field(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columnIndex) entry(record []string) Entry {
	entry := Entry{
		Country: c.field(record, "country"),
		Artist:  c.field(record, "artist"),
		Song:    c.field(record, "song"),
	}
	if pos, err := strconv.Atoi(c.field(record, "position")); err == nil {
		entry.Position = pos
	}
	return entry
}
