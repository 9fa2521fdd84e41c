// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"
	"time"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
	"github.com/aclements/go-gg/table"
)

func testEvents() []*ucdp.Event {
	return []*ucdp.Event{
		{ID: 1, Year: 2016, Region: "Asia", DateStart: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Best: 5},
		{ID: 2, Year: 2016, Region: "Asia", DateStart: time.Date(2016, 7, 2, 0, 0, 0, 0, time.UTC), Best: 10},
		{ID: 3, Year: 2017, Region: "Africa", DateStart: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), Best: 20},
	}
}

func TestFracYear(t *testing.T) {
	g := fracYear{}.F(ucdp.EventTable(testEvents()))
	xs := g.Table(table.RootGroupID).MustColumn("time").([]float64)

	if xs[0] != 2016 {
		t.Errorf("Jan 1 = %v; want 2016", xs[0])
	}
	// July 2 of a leap year is exactly halfway through it.
	if xs[1] != 2016.5 {
		t.Errorf("Jul 2 = %v; want 2016.5", xs[1])
	}
}

func TestCountByYear(t *testing.T) {
	g := countByYear{}.F(ucdp.EventTable(testEvents()))
	tab := g.Table(table.RootGroupID)

	if got, want := tab.MustColumn("year").([]int), []int{2016, 2017}; !reflect.DeepEqual(got, want) {
		t.Errorf("year = %v; want %v", got, want)
	}
	if got, want := tab.MustColumn("count").([]float64), []float64{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("count = %v; want %v", got, want)
	}
}

func TestTotalByYear(t *testing.T) {
	g := table.GroupBy(ucdp.EventTable(testEvents()), "region")
	g = totalByYear{Y: "best"}.F(g)

	for _, gid := range g.Tables() {
		tab := g.Table(gid)
		region, _ := tab.Const("region")
		switch region {
		case "Asia":
			if got, want := tab.MustColumn("total best").([]float64), []float64{15}; !reflect.DeepEqual(got, want) {
				t.Errorf("Asia totals = %v; want %v", got, want)
			}
		case "Africa":
			if got, want := tab.MustColumn("total best").([]float64), []float64{20}; !reflect.DeepEqual(got, want) {
				t.Errorf("Africa totals = %v; want %v", got, want)
			}
		default:
			t.Errorf("unexpected region %v", region)
		}
	}
}

func TestBinCount(t *testing.T) {
	tab := new(table.Builder).Add("best", []float64{0, 1, 9, 10, 25}).Done()
	g := binCount{X: "best", Width: 10}.F(tab)
	out := g.Table(table.RootGroupID)

	if got, want := out.MustColumn("count").([]float64), []float64{3, 1, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("count = %v; want %v", got, want)
	}
	if got, want := out.MustColumn("best").([]float64), []float64{5, 15, 25}; !reflect.DeepEqual(got, want) {
		t.Errorf("midpoints = %v; want %v", got, want)
	}
}
