// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"time"

	"github.com/aclements/go-gg/table"
)

// ConflictTable converts conflicts into a go-gg table with one row
// per conflict-year. Coded columns are recoded into their labels;
// the raw codes are not carried over.
func ConflictTable(conflicts []*Conflict) *table.Table {
	n := len(conflicts)
	var (
		ids       = make([]int, n)
		locations = make([]string, n)
		sideA     = make([]string, n)
		sideB     = make([]string, n)
		years     = make([]int, n)
		intens    = make([]string, n)
		ctypes    = make([]string, n)
		incompat  = make([]string, n)
		starts    = make([]string, n)
		regions   = make([]string, n)
	)
	for i, c := range conflicts {
		ids[i] = c.ID
		locations[i] = c.Location
		sideA[i] = c.SideA
		sideB[i] = c.SideB
		years[i] = c.Year
		intens[i] = IntensityLabel(c.IntensityLevel)
		ctypes[i] = ConflictTypeLabel(c.TypeOfConflict)
		incompat[i] = IncompatibilityLabel(c.Incompatibility)
		starts[i] = c.StartDate.Raw
		regions[i] = c.Region
	}

	return new(table.Builder).
		Add("conflict", ids).
		Add("location", locations).
		Add("side a", sideA).
		Add("side b", sideB).
		Add("year", years).
		Add("intensity", intens).
		Add("type", ctypes).
		Add("incompatibility", incompat).
		Add("start date", starts).
		Add("region", regions).
		Done()
}

// DyadTable converts dyads into a go-gg table with one row per actor
// pair per conflict-year.
func DyadTable(dyads []Dyad) *table.Table {
	n := len(dyads)
	var (
		ids       = make([]int, n)
		years     = make([]int, n)
		locations = make([]string, n)
		sideA     = make([]string, n)
		sideB     = make([]string, n)
	)
	for i, d := range dyads {
		ids[i] = d.ConflictID
		years[i] = d.Year
		locations[i] = d.Location
		sideA[i] = d.SideA
		sideB[i] = d.SideB
	}

	return new(table.Builder).
		Add("conflict", ids).
		Add("year", years).
		Add("location", locations).
		Add("side a", sideA).
		Add("side b", sideB).
		Done()
}

// EventTable converts events into a go-gg table with one row per
// event. The violence type and date precision codes are recoded
// into their labels.
func EventTable(events []*Event) *table.Table {
	n := len(events)
	var (
		ids       = make([]int, n)
		years     = make([]int, n)
		vtypes    = make([]string, n)
		countries = make([]string, n)
		regions   = make([]string, n)
		dates     = make([]time.Time, n)
		precs     = make([]string, n)
		best      = make([]float64, n)
		low       = make([]float64, n)
		high      = make([]float64, n)
	)
	for i, e := range events {
		ids[i] = e.ID
		years[i] = e.Year
		vtypes[i] = ViolenceTypeLabel(e.TypeOfViolence)
		countries[i] = e.Country
		regions[i] = e.Region
		dates[i] = e.DateStart
		precs[i] = DatePrecisionLabel(e.DatePrec)
		best[i] = float64(e.Best)
		low[i] = float64(e.Low)
		high[i] = float64(e.High)
	}

	return new(table.Builder).
		Add("event", ids).
		Add("year", years).
		Add("violence type", vtypes).
		Add("country", countries).
		Add("region", regions).
		Add("date", dates).
		Add("precision", precs).
		Add("best", best).
		Add("low", low).
		Add("high", high).
		Done()
}
