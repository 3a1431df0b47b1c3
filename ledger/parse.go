// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"

	"github.com/danielhkuo/eurovision-table/models"
)

// ParseGrade converts a loosely typed form or JSON value into a grade.
// Non-numeric, fractional, and out-of-range values fail with
// models.ErrInvalidGradeValue.
func ParseGrade(raw interface{}) (int, error) {
	n, err := models.ParseInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidGradeValue, err)
	}
	if err := ValidateGrade(n); err != nil {
		return 0, err
	}
	return n, nil
}
