package fid

import (
	"errors"
	"fmt"
)

var (
	// ErrShape reports a parameter table whose columns or rows are malformed.
	ErrShape = errors.New("fid: parameter table shape mismatch")
	// ErrInvalidSettings reports a non-positive sample count or spectral width.
	ErrInvalidSettings = errors.New("fid: invalid acquisition settings")
	// ErrSyntax reports unparsable text input.
	ErrSyntax = errors.New("fid: syntax error")
)

// ShapeError describes a malformed parameter table.
//
// Column-form input sets Lengths to the amplitude, phase, frequency and
// damping column lengths and Row to -1. Row-form input sets Row to the
// offending row and Width to its field count.
type ShapeError struct {
	Row     int
	Width   int
	Lengths [4]int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("fid: column lengths differ: amplitude=%d phase=%d frequency=%d damping=%d",
			e.Lengths[0], e.Lengths[1], e.Lengths[2], e.Lengths[3])
	}
	return fmt.Sprintf("fid: row %d has %d fields, want 4", e.Row, e.Width)
}

// Is reports whether target is [ErrShape].
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// SettingsError describes an acquisition setting outside its valid range.
type SettingsError struct {
	Field string
	Value float64
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("fid: %s must be > 0: %v", e.Field, e.Value)
}

// Is reports whether target is [ErrInvalidSettings].
func (e *SettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}
