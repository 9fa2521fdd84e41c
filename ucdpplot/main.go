// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ucdpplot renders charts of the georeferenced event dataset.
//
// Each chart is a self-contained demonstration built from the same
// loaded table:
//
//	scatter  fatalities per event over time, colored by region
//	trend    the scatter with a LOESS smoothed trend line
//	counts   events per year as a step chart
//	hist     histogram of per-event fatality estimates
//	density  kernel density of log10 fatalities
//	ecdf     cumulative distribution of fatalities
//	regions  yearly fatality totals, one small multiple per region
//
// The chart is written as a single SVG file with fixed per-facet
// dimensions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
)

var (
	flagEvents = flag.String("events", "data/ged241.csv", "read event CSV from `file`")
	flagChart  = flag.String("chart", "scatter", "render `chart`: scatter, trend, counts, hist, density, ecdf, or regions")
	flagOut    = flag.String("o", "ucdp.svg", "write SVG to `file`")
)

func main() {
	log.SetPrefix("ucdpplot: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nRender a chart of the event dataset.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*flagEvents)
	if err != nil {
		log.Fatal(err)
	}
	events, err := ucdp.ParseEvents(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	// Events whose date never parsed cannot be placed on a time
	// axis.
	events = ucdp.FilterInPlace(events, func(e *ucdp.Event) bool {
		return !e.DateStart.IsZero()
	})
	if len(events) == 0 {
		log.Fatal("no dated events")
	}

	p, nrows, ncols, err := plot(*flagChart, events)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	p.WriteSVG(out, 500*ncols, 350*nrows)
}
