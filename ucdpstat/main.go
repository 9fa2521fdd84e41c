// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ucdpstat prints descriptive statistics for the georeferenced event
// dataset.
//
// It reports a whole-frame summary of the numeric columns, grouped
// fatality aggregates (count, sum, mean, max of the best estimate),
// the deadliest individual events, and quantiles of the fatality
// distribution. The grouping column is chosen with -by.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
	"github.com/aclements/go-moremath/stats"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	flagEvents = flag.String("events", "data/ged241.csv", "read event CSV from `file`")
	flagBy     = flag.String("by", "region", "group fatalities by `column`: region, year, or type")
	flagSince  = flag.Int("since", 0, "keep only events from `year` on")
	flagTop    = flag.Int("top", 10, "list the `n` deadliest events")
	flagOut    = flag.String("o", "", "write output to `file` (default stdout)")
)

func main() {
	log.SetPrefix("ucdpstat: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nPrint descriptive statistics for the event dataset.\n\n", os.Args[0])
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
	df := dataframe.ReadCSV(f)
	f.Close()
	if df.Err != nil {
		log.Fatal(df.Err)
	}

	if *flagSince > 0 {
		df = df.Filter(dataframe.F{
			Colname:    "year",
			Comparator: series.GreaterEq,
			Comparando: *flagSince,
		})
		if df.Err != nil {
			log.Fatal(df.Err)
		}
	}

	// Recode the violence type column into labels so the grouped
	// output reads as categories rather than codes.
	df = df.Mutate(violenceLabels(df))
	if df.Err != nil {
		log.Fatal(df.Err)
	}

	by := ""
	switch *flagBy {
	case "region":
		by = "region"
	case "year":
		by = "year"
	case "type":
		by = "violence_type"
	default:
		log.Fatalf("unknown grouping %q", *flagBy)
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

	fmt.Fprintln(out, "== column summary ==")
	fmt.Fprintln(out, df.Describe())

	fmt.Fprintf(out, "== fatalities by %s ==\n", *flagBy)
	fmt.Fprintln(out, fatalitiesBy(df, by))

	fmt.Fprintf(out, "== %d deadliest events ==\n", *flagTop)
	fmt.Fprintln(out, deadliest(df, *flagTop))

	fmt.Fprintln(out, "== fatality distribution (best estimate) ==")
	printDistribution(out, df)
}

// violenceLabels builds a label column from the numeric
// type_of_violence column.
func violenceLabels(df dataframe.DataFrame) series.Series {
	codes := df.Col("type_of_violence").Records()
	labels := make([]string, len(codes))
	for i, s := range codes {
		code, err := strconv.Atoi(s)
		if err != nil {
			code = 0
		}
		labels[i] = ucdp.ViolenceTypeLabel(code)
	}
	return series.New(labels, series.String, "violence_type")
}

// fatalitiesBy aggregates the best fatality estimate per group:
// event count, total, mean, and worst single event.
func fatalitiesBy(df dataframe.DataFrame, by string) dataframe.DataFrame {
	agg := df.
		GroupBy(by).
		Aggregation(
			[]dataframe.AggregationType{
				dataframe.Aggregation_COUNT,
				dataframe.Aggregation_SUM,
				dataframe.Aggregation_MEAN,
				dataframe.Aggregation_MAX,
			},
			[]string{"best", "best", "best", "best"})
	return agg.Arrange(dataframe.RevSort("best_SUM"))
}

// deadliest lists the n individual events with the highest best
// fatality estimate.
func deadliest(df dataframe.DataFrame, n int) dataframe.DataFrame {
	sorted := df.
		Select([]string{"id", "year", "region", "country", "side_a", "side_b", "best"}).
		Arrange(dataframe.RevSort("best"))
	if sorted.Err != nil {
		return sorted
	}
	if sorted.Nrow() < n {
		n = sorted.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return sorted.Subset(idx)
}

// printDistribution summarizes the spread of the best fatality
// estimate.
func printDistribution(out *os.File, df dataframe.DataFrame) {
	xs := df.Col("best").Float()
	xs = ucdp.FilterInPlace(xs, func(x float64) bool { return !math.IsNaN(x) })
	if len(xs) == 0 {
		fmt.Fprintln(out, "no events")
		return
	}

	sample := stats.Sample{Xs: xs}
	min, max := stats.Bounds(xs)
	fmt.Fprintf(out, "events %d\n", len(xs))
	fmt.Fprintf(out, "mean   %.2f\n", stats.Mean(xs))
	fmt.Fprintf(out, "median %.0f\n", sample.Quantile(0.5))
	fmt.Fprintf(out, "p90    %.0f\n", sample.Quantile(0.9))
	fmt.Fprintf(out, "p99    %.0f\n", sample.Quantile(0.99))
	fmt.Fprintf(out, "range  %.0f-%.0f\n", min, max)
}
