// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"testing"
	"time"
)

func dateConflicts(raws ...string) []*Conflict {
	conflicts := make([]*Conflict, len(raws))
	for i, raw := range raws {
		conflicts[i] = &Conflict{StartDate: DateField{Raw: raw}}
	}
	return conflicts
}

func TestParseConflictDates(t *testing.T) {
	// ISO dates parse under the first default layout.
	conflicts := dateConflicts("1978-04-27", "", "2003-11-25")
	ParseConflictDates(conflicts, nil)
	if want := time.Date(1978, 4, 27, 0, 0, 0, 0, time.UTC); !conflicts[0].StartDate.Time.Equal(want) {
		t.Errorf("got %v; want %v", conflicts[0].StartDate.Time, want)
	}
	if conflicts[1].StartDate.Parsed {
		t.Errorf("empty value should stay unparsed")
	}
	if !conflicts[2].StartDate.Parsed {
		t.Errorf("non-empty value should be parsed")
	}
}

func TestParseConflictDatesFallback(t *testing.T) {
	// Day-first dates fail the ISO layout but parse under a
	// later one.
	conflicts := dateConflicts("27/04/1978", "25/11/2003")
	ParseConflictDates(conflicts, nil)
	if want := time.Date(1978, 4, 27, 0, 0, 0, 0, time.UTC); !conflicts[0].StartDate.Time.Equal(want) {
		t.Errorf("got %v; want %v", conflicts[0].StartDate.Time, want)
	}
}

func TestParseConflictDatesAllOrNothing(t *testing.T) {
	// A column where only some values parse under any one layout
	// must be left raw in its entirety.
	conflicts := dateConflicts("1978-04-27", "27/04/1978")
	ParseConflictDates(conflicts, nil)
	for i, c := range conflicts {
		if c.StartDate.Parsed {
			t.Errorf("conflict %d: column with mixed layouts should stay raw", i)
		}
	}
}

func TestParseConflictDatesColumnsIndependent(t *testing.T) {
	conflicts := []*Conflict{{
		StartDate: DateField{Raw: "1978-04-27"},
		EpEndDate: DateField{Raw: "not a date"},
	}}
	ParseConflictDates(conflicts, nil)
	if !conflicts[0].StartDate.Parsed {
		t.Errorf("StartDate should parse")
	}
	if conflicts[0].EpEndDate.Parsed {
		t.Errorf("EpEndDate should stay raw")
	}
}
