// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGradeValue   = errors.New("grade must be an integer between 1 and 12")
	ErrInvalidOrderValue   = errors.New("order must be a positive integer")
	ErrAssociationNotFound = errors.New("country is not part of this stage")
	ErrMalformedEntry      = errors.New("malformed roster entry")
	ErrNotFound            = errors.New("not found")
	ErrPersistence         = errors.New("persistence failure")
)

// EntryError identifies the roster row and field that failed validation.
// Row is the source line or sheet row, header included, when the entry came
// from a file, else the 1-based index in the batch. Header problems use row 0.
type EntryError struct {
	Row    int
	Field  string
	Reason string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
}

func (e *EntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// PersistenceError wraps a driver error from the named store operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
