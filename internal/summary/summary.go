package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/leengari/sheetplot/internal/projection"
)

// GroupStats describes the distribution of one group
type GroupStats struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes GroupStats for every group, in group order
func Describe(groups []projection.Group) ([]GroupStats, error) {
	out := make([]GroupStats, 0, len(groups))
	for _, g := range groups {
		gs, err := describe(g)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", g.Name, err)
		}
		out = append(out, gs)
	}
	return out, nil
}

func describe(g projection.Group) (GroupStats, error) {
	data := stats.Float64Data(g.Values)
	gs := GroupStats{Name: g.Name, Count: data.Len()}

	var err error
	if gs.Mean, err = stats.Mean(data); err != nil {
		return gs, err
	}
	if gs.Min, err = stats.Min(data); err != nil {
		return gs, err
	}
	if gs.Max, err = stats.Max(data); err != nil {
		return gs, err
	}
	if gs.Median, err = stats.Median(data); err != nil {
		return gs, err
	}

	// quartiles and sample deviation need two observations
	if data.Len() < 2 {
		gs.Q1, gs.Q3 = gs.Median, gs.Median
		return gs, nil
	}
	q, err := stats.Quartile(data)
	if err != nil {
		return gs, err
	}
	gs.Q1, gs.Q3 = q.Q1, q.Q3
	if gs.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return gs, err
	}
	return gs, nil
}

// Render prints the statistics as a table
func Render(w io.Writer, rows []GroupStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"species", "count", "mean", "std", "min", "25%", "50%", "75%", "max"})
	for _, r := range rows {
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.Count),
			format(r.Mean),
			format(r.StdDev),
			format(r.Min),
			format(r.Q1),
			format(r.Median),
			format(r.Q3),
			format(r.Max),
		})
	}
	table.Render()
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
