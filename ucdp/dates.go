// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import "time"

// DefaultDateLayouts is the default sequence of layouts used by
// ParseConflictDates if no layouts are specified. Recent releases of
// the armed conflict dataset write ISO dates; older spreadsheets
// exported day-first dates.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"1/2/2006",
}

// ParseConflictDates parses the raw date columns of conflicts into
// time.Time using best-effort layout detection.
//
// For each date column, the layouts are tried in order. A layout is
// accepted only if every non-empty value in that column parses under
// it, in which case the Time and Parsed fields of the column's
// DateFields are filled in. If no layout parses the whole column,
// the column is left raw.
//
// If layouts is nil, it uses DefaultDateLayouts.
func ParseConflictDates(conflicts []*Conflict, layouts []string) {
	if layouts == nil {
		layouts = DefaultDateLayouts
	}

	cols := []func(*Conflict) *DateField{
		func(c *Conflict) *DateField { return &c.StartDate },
		func(c *Conflict) *DateField { return &c.StartDate2 },
		func(c *Conflict) *DateField { return &c.EpEndDate },
	}
	for _, col := range cols {
		for _, layout := range layouts {
			if tryLayout(conflicts, col, layout) {
				break
			}
		}
	}
}

// tryLayout parses one date column under layout. It assigns nothing
// unless the whole column parses.
func tryLayout(conflicts []*Conflict, col func(*Conflict) *DateField, layout string) bool {
	times := make([]time.Time, len(conflicts))
	for i, c := range conflicts {
		f := col(c)
		if f.Raw == "" {
			continue
		}
		t, err := time.Parse(layout, f.Raw)
		if err != nil {
			return false
		}
		times[i] = t
	}

	for i, c := range conflicts {
		f := col(c)
		if f.Raw == "" {
			continue
		}
		f.Time, f.Parsed = times[i], true
	}
	return true
}
