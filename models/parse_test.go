// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    int
		wantErr bool
	}{
		{"int", 7, 7, false},
		{"int64", int64(-2), -2, false},
		{"whole float", 12.0, 12, false},
		{"fractional float", 2.5, 0, true},
		{"json number", json.Number("4"), 4, false},
		{"padded string", " 9 ", 9, false},
		{"word", "abc", 0, true},
		{"empty string", "", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseInt(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
