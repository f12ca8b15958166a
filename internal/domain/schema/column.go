package schema

import (
	"strconv"
	"strings"
)

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeBool  ColumnType = "BOOL"
)

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// IsNumeric reports whether the column holds numbers
func (c Column) IsNumeric() bool {
	return c.Type == ColumnTypeFloat || c.Type == ColumnTypeInt
}

// InferColumnType returns FLOAT when every non-empty cell parses as a number,
// TEXT otherwise. A column with no values at all is TEXT.
func InferColumnType(cells []string) ColumnType {
	seen := false
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, ok := ParseNumber(cell); !ok {
			return ColumnTypeText
		}
		seen = true
	}
	if !seen {
		return ColumnTypeText
	}
	return ColumnTypeFloat
}

// ParseNumber parses a spreadsheet cell as float64
func ParseNumber(cell string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
