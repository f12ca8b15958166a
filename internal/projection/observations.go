package projection

import (
	"fmt"
	"math"
	"strings"

	"github.com/leengari/sheetplot/internal/domain/schema"
)

// Observations pairs a numeric measurement with its category, row by row
type Observations struct {
	Values     []float64
	Categories []string
	// Dropped counts rows skipped for a missing or non-numeric value,
	// or a missing category
	Dropped int
}

// Len returns the number of paired observations
func (o Observations) Len() int {
	return len(o.Values)
}

// Group is the set of measurements sharing one category
type Group struct {
	Name   string
	Values []float64
}

const (
	valueAlias    = "value"
	categoryAlias = "category"
)

// Pairs projects the numeric and category columns of table and pairs them
// positionally. Rows that cannot be paired are dropped and counted.
// Text cells are parsed as numbers unless the schema already declares the
// numeric column as FLOAT or INT.
func Pairs(table *schema.Table, numeric, category string) (Observations, error) {
	cols, err := Columns(table, NewProjectionWithColumns(
		ColumnRef{Column: numeric, Alias: valueAlias},
		ColumnRef{Column: category, Alias: categoryAlias},
	))
	if err != nil {
		return Observations{}, err
	}

	parseText := true
	if col, ok := table.Schema.Column(numeric); ok && col.IsNumeric() {
		parseText = false
	}

	values, categories := cols[valueAlias], cols[categoryAlias]
	obs := Observations{
		Values:     make([]float64, 0, len(values)),
		Categories: make([]string, 0, len(values)),
	}

	for i := range values {
		v, ok := toFloat(values[i], parseText)
		c, okCat := toCategory(categories[i])
		if !ok || !okCat {
			obs.Dropped++
			continue
		}
		obs.Values = append(obs.Values, v)
		obs.Categories = append(obs.Categories, c)
	}

	return obs, nil
}

// GroupBy partitions observations by category, in order of first appearance
func GroupBy(obs Observations) []Group {
	var groups []Group
	index := make(map[string]int)

	for i, c := range obs.Categories {
		pos, ok := index[c]
		if !ok {
			pos = len(groups)
			index[c] = pos
			groups = append(groups, Group{Name: c})
		}
		groups[pos].Values = append(groups[pos].Values, obs.Values[i])
	}
	return groups
}

// GroupNames returns the group names in order
func GroupNames(groups []Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func toFloat(v interface{}, parseText bool) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		if !parseText {
			return 0, false
		}
		parsed, ok := schema.ParseNumber(n)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	return f, !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toCategory(v interface{}) (string, bool) {
	switch c := v.(type) {
	case nil:
		return "", false
	case string:
		c = strings.TrimSpace(c)
		return c, c != ""
	case float64:
		return fmt.Sprintf("%g", c), true
	case bool:
		return fmt.Sprintf("%t", c), true
	default:
		return fmt.Sprintf("%v", c), true
	}
}
