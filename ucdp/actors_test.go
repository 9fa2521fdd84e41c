// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"fmt"
	"reflect"
	"testing"
)

func TestSplitActors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []string
	}{
		{"IS, Taleban", []string{"IS", "Taleban"}},
		{"Government of India", []string{"Government of India"}},
		{"", []string{}},
		{" , IS , ", []string{"IS"}},
	} {
		got := SplitActors(test.input)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("SplitActors(%q) = %v; want %v", test.input, got, test.want)
		}
	}
}

func TestCleanActor(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{"Government of Afghanistan", "Afghanistan"},
		{"Hyderabad (Nizam)", "Hyderabad"},
		{"  PLO   groups ", "PLO groups"},
		{"IS", "IS"},
	} {
		if got := CleanActor(test.input); got != test.want {
			t.Errorf("CleanActor(%q) = %q; want %q", test.input, got, test.want)
		}
	}
}

func ExampleExplodeDyads() {
	conflicts := []*Conflict{{
		ID: 333, Year: 2017, Location: "Afghanistan",
		SideA: "Government of Afghanistan",
		SideB: "IS, Taleban",
	}}
	for _, d := range ExplodeDyads(conflicts) {
		fmt.Printf("%d %d %s vs %s\n", d.ConflictID, d.Year, d.SideA, d.SideB)
	}
	// Output:
	// 333 2017 Afghanistan vs IS
	// 333 2017 Afghanistan vs Taleban
}

func TestExplodeDyadsEmptySide(t *testing.T) {
	conflicts := []*Conflict{{ID: 1, SideA: "X", SideB: ""}}
	if dyads := ExplodeDyads(conflicts); len(dyads) != 0 {
		t.Errorf("want no dyads; got %v", dyads)
	}
}
