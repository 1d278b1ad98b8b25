// SPDX-License-Identifier: MIT
// Package: hyperlath/table
//
// selector.go — column selectors.
//
// Resolution order: label lookup first; on a miss, the positional fallback
// (when the selector carries one). Nothing resolved ⇒ ErrInvalidColumns.

package table

import (
	"fmt"
	"strconv"
)

// noPos marks a selector without positional fallback.
const noPos = -1

// Selector picks one column of a Frame by label, by zero-based position, or
// by label with a positional fallback.
type Selector struct {
	label string
	pos   int
}

// Label selects a column by its label only.
func Label(name string) Selector {
	return Selector{label: name, pos: noPos}
}

// Pos selects a column by zero-based position only.
func Pos(i int) Selector {
	return Selector{pos: i}
}

// LabelOr selects by label and falls back to position i when the label is absent.
func LabelOr(name string, i int) Selector {
	return Selector{label: name, pos: i}
}

// Parse interprets s the way the CLI flags do: a non-negative integer is a
// label with the same positional fallback (a column literally named "0" wins
// over position 0), anything else is a label.
func Parse(s string) Selector {
	if i, err := strconv.Atoi(s); err == nil && i >= 0 {
		return LabelOr(s, i)
	}

	return Label(s)
}

// String renders the selector for error messages.
func (s Selector) String() string {
	switch {
	case s.label != "" && s.pos >= 0:
		return fmt.Sprintf("%q|#%d", s.label, s.pos)
	case s.label != "":
		return strconv.Quote(s.label)
	default:
		return "#" + strconv.Itoa(s.pos)
	}
}

// Resolve returns the column index s designates in f.
// Complexity: O(cols).
func (s Selector) Resolve(f *Frame) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("Resolve(%s): nil frame: %w", s, ErrInvalidColumns)
	}
	if s.label != "" {
		for i, c := range f.Columns {
			if c == s.label {
				return i, nil
			}
		}
	}
	if s.pos >= 0 && s.pos < f.NumCols() {
		return s.pos, nil
	}

	return 0, fmt.Errorf("Resolve(%s) against %d columns: %w", s, f.NumCols(), ErrInvalidColumns)
}
