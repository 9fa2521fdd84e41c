// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"regexp"
	"strings"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	parenRe = regexp.MustCompile(`\s*\([^()]*\)$`)
)

// SplitActors splits a comma-delimited actor or region string into
// its components. Empty components are dropped.
func SplitActors(s string) []string {
	actors := []string{}
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			actors = append(actors, a)
		}
	}
	return actors
}

// CleanActor normalizes an actor name for display: it collapses runs
// of whitespace, strips a trailing parenthetical qualifier, and
// strips the "Government of" prefix from government actors.
func CleanActor(s string) string {
	s = spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	s = parenRe.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "Government of ")
	return s
}

// A Dyad is a single pair of opposing actors in a conflict-year. A
// Conflict row with several actors on a side compounds them into one
// delimited string; ExplodeDyads turns each such row into one Dyad
// per actor pair.
type Dyad struct {
	ConflictID int
	Year       int
	Location   string
	SideA      string
	SideB      string
}

// ExplodeDyads converts the compound side columns of conflicts into
// long form: one Dyad per (side A actor, side B actor) pair per row.
// Actor names are cleaned with CleanActor. Rows with an empty side
// produce no dyads.
func ExplodeDyads(conflicts []*Conflict) []Dyad {
	dyads := []Dyad{}
	for _, c := range conflicts {
		for _, a := range SplitActors(c.SideA) {
			for _, b := range SplitActors(c.SideB) {
				dyads = append(dyads, Dyad{
					ConflictID: c.ID,
					Year:       c.Year,
					Location:   c.Location,
					SideA:      CleanActor(a),
					SideB:      CleanActor(b),
				})
			}
		}
	}
	return dyads
}
