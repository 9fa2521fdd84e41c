// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// plot builds the named chart from events and returns it along with
// its facet grid size.
func plot(chart string, events []*ucdp.Event) (*gg.Plot, int, int, error) {
	tab := ucdp.EventTable(events)

	switch chart {
	case "scatter":
		return scatterPlot(tab, false), 1, 1, nil
	case "trend":
		return scatterPlot(tab, true), 1, 1, nil
	case "counts":
		return countsPlot(tab), 1, 1, nil
	case "hist":
		return histPlot(tab), 1, 1, nil
	case "density":
		return densityPlot(tab), 1, 1, nil
	case "ecdf":
		return ecdfPlot(tab), 1, 1, nil
	case "regions":
		p, nrows, ncols := regionsPlot(tab)
		return p, nrows, ncols, nil
	}
	return nil, 0, 0, fmt.Errorf("unknown chart %q", chart)
}

// scatterPlot places one point per event: fatalities over time,
// colored by region. With trend, a LOESS fit is drawn over the
// points.
func scatterPlot(tab table.Grouping, trend bool) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(fracYear{})
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "time", Y: "best", Color: "region"})

	if trend {
		defer p.Save().Restore()
		p.Stat(ggstat.LOESS{X: "time", Y: "best", Span: 0.75})
		p.Add(gg.LayerLines{X: "time", Y: "best"})
		p.Add(gg.Title("fatalities per event with LOESS trend"))
	} else {
		p.Add(gg.Title("fatalities per event"))
	}
	return p
}

// countsPlot draws the number of events per year as a step chart,
// the closest thing to a bar chart the renderer has.
func countsPlot(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(countByYear{})
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "year", Y: "count"},
		Step:       gg.StepHMid,
	})
	p.Add(gg.Title("events per year"))
	return p
}

// histPlot draws a histogram of the best fatality estimate.
func histPlot(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(binCount{X: "best", Width: 10})
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "best", Y: "count"},
		Step:       gg.StepHMid,
	})
	p.Add(gg.Title("fatality estimates"))
	return p
}

// densityPlot draws a kernel density estimate of log10 fatalities.
// Events with a zero best estimate have no logarithm and are
// dropped.
func densityPlot(tab table.Grouping) *gg.Plot {
	g := table.Filter(tab, func(best float64) bool { return best > 0 }, "best")
	p := gg.NewPlot(g)
	p.Stat(log10Col{X: "best"}, ggstat.Density{X: "log10 best"})
	p.Add(gg.LayerLines{X: "log10 best", Y: "probability density"})
	p.Add(gg.Title("distribution of log10 fatalities"))
	return p
}

// ecdfPlot draws the empirical CDF of the best fatality estimate.
func ecdfPlot(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(ggstat.ECDF{X: "best"})
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "best", Y: "cumulative density"},
	})
	p.Add(gg.Title("cumulative distribution of fatalities"))
	return p
}

// regionsPlot draws yearly fatality totals as one small multiple per
// region with a shared Y scale.
func regionsPlot(tab table.Grouping) (*gg.Plot, int, int) {
	nregions := len(table.GroupBy(tab, "region").Tables())
	ncols := 3
	if nregions < ncols {
		ncols = nregions
	}
	nrows := (nregions + ncols - 1) / ncols

	p := gg.NewPlot(tab)
	p.GroupBy("region")
	p.Stat(totalByYear{Y: "best"})
	p.Add(gg.FacetWrap{Col: "region", Cols: ncols})
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{X: "year", Y: "total best"})
	p.Add(gg.Title("yearly fatalities by region"))
	return p, nrows, ncols
}

// fracYear turns the date column into a fractional year column so
// events can be placed on a continuous time axis.
type fracYear struct{}

func (fracYear) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		dates := t.MustColumn("date").([]time.Time)
		xs := make([]float64, len(dates))
		for i, d := range dates {
			start := time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(d.Year()+1, 1, 1, 0, 0, 0, 0, time.UTC)
			xs[i] = float64(d.Year()) + d.Sub(start).Seconds()/end.Sub(start).Seconds()
		}
		return table.NewBuilder(t).Add("time", xs).Done()
	})
}

// countByYear counts rows per distinct year within each group.
type countByYear struct{}

func (countByYear) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		counts := make(map[int]float64)
		for _, y := range t.MustColumn("year").([]int) {
			counts[y]++
		}
		years, ns := sortCounts(counts)
		return new(table.Builder).Add("year", years).Add("count", ns).Done()
	})
}

// totalByYear sums column Y per distinct year within each group. The
// group's region carries over as a constant column so the result can
// be faceted.
type totalByYear struct {
	Y string
}

func (s totalByYear) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var ys []float64
		slice.Convert(&ys, t.MustColumn(s.Y))
		totals := make(map[int]float64)
		for i, y := range t.MustColumn("year").([]int) {
			totals[y] += ys[i]
		}
		years, sums := sortCounts(totals)

		b := new(table.Builder).Add("year", years).Add("total "+s.Y, sums)
		if regions := t.MustColumn("region").([]string); len(regions) > 0 {
			b.AddConst("region", regions[0])
		}
		return b.Done()
	})
}

func sortCounts(m map[int]float64) ([]int, []float64) {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return keys, vals
}

// binCount bins column X into fixed-width bins and counts the rows
// in each. The output X column is the bin midpoint.
type binCount struct {
	X     string
	Width float64
}

func (b binCount) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(b.X))
		min, max := stats.Bounds(xs)

		width := b.Width
		if width <= 0 {
			width = (max - min) / 30
		}
		if width <= 0 {
			width = 1
		}

		nbins := int((max-min)/width) + 1
		counts := make([]float64, nbins)
		for _, x := range xs {
			i := int((x - min) / width)
			if i >= nbins {
				i = nbins - 1
			}
			counts[i]++
		}
		mids := vec.Linspace(min+width/2, min+width*(float64(nbins)-0.5), nbins)

		return new(table.Builder).Add(b.X, mids).Add("count", counts).Done()
	})
}

// log10Col adds a log10 transform of column X.
type log10Col struct {
	X string
}

func (s log10Col) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		logs := make([]float64, len(xs))
		for i, x := range xs {
			logs[i] = math.Log10(x)
		}
		return table.NewBuilder(t).Add("log10 "+s.X, logs).Done()
	})
}
