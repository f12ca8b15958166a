package summary

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/sheetplot/internal/projection"
)

func TestDescribe(t *testing.T) {
	rows, err := Describe([]projection.Group{
		{Name: "setosa", Values: []float64{3.5, 3.0, 3.2, 3.1}},
		{Name: "virginica", Values: []float64{3.0}},
	})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 2)

	setosa := rows[0]
	assert.Equal(t, setosa.Name, "setosa")
	assert.Equal(t, setosa.Count, 4)
	assert.Assert(t, math.Abs(setosa.Mean-3.2) < 1e-9)
	assert.Equal(t, setosa.Min, 3.0)
	assert.Equal(t, setosa.Max, 3.5)
	assert.Assert(t, math.Abs(setosa.Median-3.15) < 1e-9)
	assert.Assert(t, math.Abs(setosa.Q1-3.05) < 1e-9)
	assert.Assert(t, math.Abs(setosa.Q3-3.35) < 1e-9)
	assert.Assert(t, setosa.StdDev > 0)

	single := rows[1]
	assert.Equal(t, single, GroupStats{Name: "virginica", Count: 1, Mean: 3, Min: 3, Q1: 3, Median: 3, Q3: 3, Max: 3})
}

func TestDescribe_EmptyGroup(t *testing.T) {
	_, err := Describe([]projection.Group{{Name: "setosa"}})
	assert.ErrorContains(t, err, "describe setosa")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []GroupStats{{Name: "setosa", Count: 2, Mean: 3.25, Min: 3, Q1: 3, Median: 3.25, Q3: 3.5, Max: 3.5}})

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "SPECIES"), out)
	assert.Assert(t, strings.Contains(out, "setosa"), out)
	assert.Assert(t, strings.Contains(out, "3.250"), out)
}
