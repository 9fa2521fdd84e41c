// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// eventDateLayouts are the layouts the event dataset has used for its
// date columns across releases.
var eventDateLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02",
}

// ParseConflicts parses the UCDP/PRIO armed conflict CSV from r. It
// returns one *Conflict per data row. The date columns are kept as
// raw strings; see ParseConflictDates.
func ParseConflicts(r io.Reader) ([]*Conflict, error) {
	rows, err := readCSV(r,
		"conflict_id", "location", "side_a", "side_b",
		"incompatibility", "year", "intensity_level",
		"type_of_conflict", "start_date", "region")
	if err != nil {
		return nil, err
	}

	conflicts := []*Conflict{}
	for _, r := range rows {
		c := &Conflict{
			ID:                  r.int("conflict_id"),
			Location:            r.str("location"),
			SideA:               r.str("side_a"),
			SideA2nd:            r.str("side_a_2nd"),
			SideB:               r.str("side_b"),
			SideB2nd:            r.str("side_b_2nd"),
			Incompatibility:     r.int("incompatibility"),
			TerritoryName:       r.str("territory_name"),
			Year:                r.int("year"),
			IntensityLevel:      r.int("intensity_level"),
			CumulativeIntensity: r.int("cumulative_intensity"),
			TypeOfConflict:      r.int("type_of_conflict"),
			StartDate:           DateField{Raw: r.str("start_date")},
			StartDate2:          DateField{Raw: r.str("start_date2")},
			EpEnd:               r.str("ep_end") == "1",
			EpEndDate:           DateField{Raw: r.str("ep_end_date")},
			Region:              r.str("region"),
			Version:             r.str("version"),
		}
		if r.err != nil {
			return nil, r.err
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, nil
}

// ParseEvents parses the UCDP georeferenced event CSV from r. It
// returns one *Event per data row.
func ParseEvents(r io.Reader) ([]*Event, error) {
	rows, err := readCSV(r,
		"id", "year", "type_of_violence", "side_a", "side_b",
		"country", "region", "date_prec", "date_start", "best")
	if err != nil {
		return nil, err
	}

	events := []*Event{}
	for _, r := range rows {
		e := &Event{
			ID:              r.int("id"),
			Year:            r.int("year"),
			TypeOfViolence:  r.int("type_of_violence"),
			ConflictName:    r.str("conflict_name"),
			SideA:           r.str("side_a"),
			SideB:           r.str("side_b"),
			Country:         r.str("country"),
			Region:          r.str("region"),
			Latitude:        r.float("latitude"),
			Longitude:       r.float("longitude"),
			DatePrec:        r.int("date_prec"),
			DateStart:       r.date("date_start"),
			DateEnd:         r.date("date_end"),
			DeathsA:         r.int("deaths_a"),
			DeathsB:         r.int("deaths_b"),
			DeathsCivilians: r.int("deaths_civilians"),
			DeathsUnknown:   r.int("deaths_unknown"),
			Best:            r.int("best"),
			Low:             r.int("low"),
			High:            r.int("high"),
		}
		if r.err != nil {
			return nil, r.err
		}
		events = append(events, e)
	}
	return events, nil
}

// row is one CSV data row together with the header index of its
// file. Its accessors treat a missing or empty field as the zero
// value and record the first conversion error.
type row struct {
	idx map[string]int
	rec []string
	n   int // 1-based line number of this row
	err error
}

// readCSV reads all of r and checks that the header names every
// column in required.
func readCSV(r io.Reader, required ...string) ([]*row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	rows := []*row{}
	for n := 2; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		rows = append(rows, &row{idx: idx, rec: rec, n: n})
	}
	return rows, nil
}

func (r *row) str(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *row) int(col string) int {
	s := r.str(col)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("row %d: column %s: %v", r.n, col, err)
	}
	return v
}

func (r *row) float(col string) float64 {
	s := r.str(col)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("row %d: column %s: %v", r.n, col, err)
	}
	return v
}

func (r *row) date(col string) time.Time {
	s := r.str(col)
	if s == "" {
		return time.Time{}
	}
	var err error
	for _, layout := range eventDateLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t
		}
	}
	if r.err == nil {
		r.err = fmt.Errorf("row %d: column %s: %v", r.n, col, err)
	}
	return time.Time{}
}
