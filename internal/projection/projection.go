package projection

import (
	"github.com/leengari/sheetplot/internal/domain/errors"
	"github.com/leengari/sheetplot/internal/domain/schema"
)

// ColumnRef names a column to project, optionally under an alias
type ColumnRef struct {
	Column string
	Alias  string
}

// Name returns the alias if set, the column name otherwise
func (c ColumnRef) Name() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Column
}

// Projection is an ordered list of columns to extract from a table
type Projection struct {
	Columns []ColumnRef
}

// NewProjectionWithColumns creates a projection over the given columns
func NewProjectionWithColumns(cols ...ColumnRef) *Projection {
	return &Projection{Columns: cols}
}

// ValidateProjection checks if all columns in the projection exist in the table schema
// Returns a ColumnNotFoundError for the first one that does not
func ValidateProjection(table *schema.Table, proj *Projection) error {
	if proj == nil {
		return nil
	}

	for _, colRef := range proj.Columns {
		if !table.HasColumn(colRef.Column) {
			return &errors.ColumnNotFoundError{
				TableName:  table.Name,
				ColumnName: colRef.Column,
			}
		}
	}

	return nil
}

// Columns extracts the projected columns as positional sequences of equal length,
// keyed by ColumnRef.Name
func Columns(table *schema.Table, proj *Projection) (map[string][]interface{}, error) {
	if err := ValidateProjection(table, proj); err != nil {
		return nil, err
	}

	out := make(map[string][]interface{}, len(proj.Columns))
	for _, colRef := range proj.Columns {
		values, err := table.ColumnValues(colRef.Column)
		if err != nil {
			return nil, err
		}
		out[colRef.Name()] = values
	}
	return out, nil
}
