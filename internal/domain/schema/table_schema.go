package schema

// TableSchema represents table metadata (header row or meta.json)
type TableSchema struct {
	TableName string
	Columns   []Column
}

// Column looks up a column by exact name
func (s *TableSchema) Column(name string) (Column, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in header order
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}
