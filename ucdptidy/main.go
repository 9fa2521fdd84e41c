// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ucdptidy demonstrates the cleaning steps the armed conflict CSV
// needs before analysis.
//
// The CSV rendition of the dataset stores its date columns as plain
// strings and compounds multi-actor sides into single comma-delimited
// fields. Each demo loads the raw file, applies one cleaning step,
// and prints the result:
//
//	dates     parse the string date columns into time.Time
//	dyads     split delimited side columns into one row per actor pair
//	recode    replace numeric codes with category labels
//	episodes  unpivot the three episode date columns into long form
//
// By default the dates demo detects a layout per column. Forcing a
// layout with -date-layout applies it strictly; forcing the wrong
// one (say, 02/01/2006 against ISO dates) halts with the parse error
// for the first value, which is a handy way to see what a layout
// mismatch looks like.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
	"github.com/aclements/go-gg/table"
)

var (
	flagConflicts = flag.String("conflicts", "data/ucdp-prio-acd-241.csv", "read armed conflict CSV from `file`")
	flagDemo      = flag.String("demo", "dates", "run `demo`: dates, dyads, recode, or episodes")
	flagLayout    = flag.String("date-layout", "", "parse date columns strictly with `layout` instead of detecting one")
	flagRows      = flag.Int("n", 10, "print at most `rows` rows")
	flagOut       = flag.String("o", "", "write output to `file` (default stdout)")
)

func main() {
	log.SetPrefix("ucdptidy: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nDemonstrate cleaning steps on the armed conflict CSV.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*flagConflicts)
	if err != nil {
		log.Fatal(err)
	}
	conflicts, err := ucdp.ParseConflicts(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	var tab table.Grouping
	switch *flagDemo {
	case "dates":
		tab = datesDemo(conflicts)
	case "dyads":
		tab = dyadsDemo(conflicts)
	case "recode":
		tab = recodeDemo(conflicts)
	case "episodes":
		tab = episodesDemo(conflicts)
	default:
		log.Fatalf("unknown demo %q", *flagDemo)
	}

	out := os.Stdout
	if *flagOut != "" {
		var err error
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}
	table.Fprint(out, tab)
}

// datesDemo parses the string date columns and shows the raw value
// next to its parsed form.
func datesDemo(conflicts []*ucdp.Conflict) table.Grouping {
	if *flagLayout == "" {
		ucdp.ParseConflictDates(conflicts, nil)
	} else {
		// Strict mode: the first value the layout cannot parse
		// halts with the time package's own error.
		for _, c := range conflicts {
			for _, f := range []*ucdp.DateField{&c.StartDate, &c.StartDate2, &c.EpEndDate} {
				if f.Raw == "" {
					continue
				}
				t, err := time.Parse(*flagLayout, f.Raw)
				if err != nil {
					log.Fatal(err)
				}
				f.Time, f.Parsed = t, true
			}
		}
	}

	conflicts = head(conflicts)
	n := len(conflicts)
	ids := make([]int, n)
	years := make([]int, n)
	raw := make([]string, n)
	parsed := make([]string, n)
	for i, c := range conflicts {
		ids[i] = c.ID
		years[i] = c.Year
		raw[i] = c.StartDate.Raw
		if c.StartDate.Parsed {
			parsed[i] = c.StartDate.Time.Format("2006-01-02")
		}
	}
	return new(table.Builder).
		Add("conflict", ids).
		Add("year", years).
		Add("start date (raw)", raw).
		Add("start date (parsed)", parsed).
		Done()
}

// dyadsDemo splits the delimited side columns into one row per actor
// pair.
func dyadsDemo(conflicts []*ucdp.Conflict) table.Grouping {
	dyads := ucdp.ExplodeDyads(conflicts)
	if len(dyads) > *flagRows {
		dyads = dyads[:*flagRows]
	}
	return table.SortBy(ucdp.DyadTable(dyads), "year")
}

// recodeDemo replaces the numeric code columns with their labels and
// groups the rows by intensity to show the categories.
func recodeDemo(conflicts []*ucdp.Conflict) table.Grouping {
	tab := ucdp.ConflictTable(head(conflicts))
	return table.GroupBy(tab, "intensity")
}

// episodesDemo unpivots the three episode date columns into a single
// long (boundary, date) column pair.
func episodesDemo(conflicts []*ucdp.Conflict) table.Grouping {
	conflicts = head(conflicts)
	n := len(conflicts)
	ids := make([]int, n)
	years := make([]int, n)
	start := make([]string, n)
	start2 := make([]string, n)
	end := make([]string, n)
	for i, c := range conflicts {
		ids[i] = c.ID
		years[i] = c.Year
		start[i] = c.StartDate.Raw
		start2[i] = c.StartDate2.Raw
		end[i] = c.EpEndDate.Raw
	}
	wide := new(table.Builder).
		Add("conflict", ids).
		Add("year", years).
		Add("first death", start).
		Add("episode start", start2).
		Add("episode end", end).
		Done()
	return table.Unpivot(wide, "boundary", "date", "first death", "episode start", "episode end")
}

func head(conflicts []*ucdp.Conflict) []*ucdp.Conflict {
	if len(conflicts) > *flagRows {
		return conflicts[:*flagRows]
	}
	return conflicts
}
