package schema

import (
	"fmt"
	"strings"

	"github.com/leengari/sheetplot/internal/domain/data"
	"github.com/leengari/sheetplot/internal/domain/errors"
)

// Table is a rectangular dataset with named columns, one row per observation
type Table struct {
	Name   string
	Source string // where the table was read from (workbook or directory path)
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable builds a table from a header row and raw cell text.
// Numeric columns are converted to float64, empty cells become nil.
// Records shorter than the header are padded with nil; longer ones are truncated.
func NewTable(name, source string, header []string, records [][]string) *Table {
	names := uniqueHeader(header)

	columns := make([]Column, len(names))
	for i, colName := range names {
		cells := make([]string, len(records))
		for r, rec := range records {
			if i < len(rec) {
				cells[r] = rec[i]
			}
		}
		columns[i] = Column{Name: colName, Type: InferColumnType(cells)}
	}

	rows := make([]data.Row, 0, len(records))
	for _, rec := range records {
		values := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			var cell string
			if i < len(rec) {
				cell = strings.TrimSpace(rec[i])
			}
			values[col.Name] = convertCell(cell, col.Type)
		}
		rows = append(rows, data.NewRow(values))
	}

	return &Table{
		Name:   name,
		Source: source,
		Schema: &TableSchema{TableName: name, Columns: columns},
		Rows:   rows,
	}
}

// HasColumn reports whether the table schema has the named column
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Schema.Column(name)
	return ok
}

// RowCount returns the number of observations
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnValues returns the column's cells in row order.
// Rows without the column yield nil so positions stay aligned.
func (t *Table) ColumnValues(name string) ([]interface{}, error) {
	if !t.HasColumn(name) {
		return nil, &errors.ColumnNotFoundError{
			TableName:  t.Name,
			ColumnName: name,
		}
	}

	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i], _ = row.Get(name)
	}
	return values, nil
}

func convertCell(cell string, typ ColumnType) interface{} {
	if cell == "" {
		return nil
	}
	if typ == ColumnTypeFloat {
		if f, ok := ParseNumber(cell); ok {
			return f
		}
	}
	return cell
}

// uniqueHeader names blank header cells "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... so every column is addressable
func uniqueHeader(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					seen[base] = n
					name = candidate
					break
				}
			}
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}
