// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucdp reads the Uppsala Conflict Data Program datasets.
//
// It understands two tables: the UCDP/PRIO armed conflict dataset,
// which has one row per conflict per active year, and the UCDP
// georeferenced event dataset, which has one row per violent event.
// Both are distributed as CSV files inside zip archives; see Fetch
// and ExtractMember.
//
// The armed conflict CSV stores its date columns as plain strings.
// ParseConflicts preserves them raw; use ParseConflictDates to
// convert them to time.Time with best-effort layout detection.
package ucdp

import "time"

// Conflict records one conflict-year of the UCDP/PRIO armed conflict
// dataset.
type Conflict struct {
	// ID is the UCDP conflict identifier. It is stable across
	// years and dataset versions.
	ID int

	// Location names the country or countries on whose territory
	// the conflict is fought. Multiple locations are
	// comma-delimited, as in the source file.
	Location string

	// SideA and SideB name the primary warring parties. A side
	// with several actors is stored as a single comma-delimited
	// string; use SplitActors to separate them.
	SideA, SideB string

	// SideA2nd and SideB2nd name states supporting each side with
	// troops, if any. Comma-delimited like SideA and SideB.
	SideA2nd, SideB2nd string

	// Incompatibility is the coded issue of the conflict. See
	// IncompatibilityLabel.
	Incompatibility int

	// TerritoryName is the disputed territory, if the
	// incompatibility concerns territory.
	TerritoryName string

	// Year is the active year this row describes.
	Year int

	// IntensityLevel codes the intensity of the conflict in Year.
	// See IntensityLabel.
	IntensityLevel int

	// CumulativeIntensity is 1 once the conflict has exceeded
	// 1,000 battle-related deaths over its history.
	CumulativeIntensity int

	// TypeOfConflict codes the conflict category. See
	// ConflictTypeLabel.
	TypeOfConflict int

	// StartDate is the date of the first battle-related death,
	// StartDate2 the start of the episode reaching 25 deaths, and
	// EpEndDate the end of the episode, if it ended. The CSV
	// rendition of the dataset stores these as strings, so they
	// arrive raw; ParseConflictDates fills in the parsed forms.
	StartDate, StartDate2, EpEndDate DateField

	// EpEnd reports whether the episode ended in Year.
	EpEnd bool

	// Region names the region(s) of the conflict,
	// comma-delimited.
	Region string

	// Version is the dataset version tag, e.g. "24.1".
	Version string
}

// Event records one row of the UCDP georeferenced event dataset: an
// instance of organized violence with at least one direct death.
type Event struct {
	// ID is the unique event identifier.
	ID int

	// Year is the year the event took place.
	Year int

	// TypeOfViolence codes the category of violence. See
	// ViolenceTypeLabel.
	TypeOfViolence int

	// ConflictName names the conflict the event belongs to.
	ConflictName string

	// SideA and SideB name the parties involved.
	SideA, SideB string

	// Country and Region locate the event.
	Country, Region string

	// Latitude and Longitude give the event coordinates.
	Latitude, Longitude float64

	// DatePrec codes how precisely the event is dated, from 1
	// (exact day) to 5 (year only). See DatePrecisionLabel.
	DatePrec int

	// DateStart and DateEnd bound when the event took place.
	// Unlike the armed conflict CSV, the event CSV dates parse
	// uniformly, so these arrive typed.
	DateStart, DateEnd time.Time

	// DeathsA, DeathsB, DeathsCivilians, and DeathsUnknown break
	// down the fatalities by who died.
	DeathsA, DeathsB, DeathsCivilians, DeathsUnknown int

	// Best is the best estimate of total fatalities; Low and High
	// bound it.
	Best, Low, High int
}

// DateField holds a date column value exactly as it appeared in the
// source file and, once parsed, its typed form.
type DateField struct {
	// Raw is the string from the file.
	Raw string

	// Time is the parsed date. It is only meaningful if Parsed is
	// true.
	Time time.Time

	// Parsed reports whether Raw was successfully parsed.
	Parsed bool
}
