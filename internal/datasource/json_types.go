package datasource

// TableMeta is the meta.json document of a table directory
type TableMeta struct {
	Name     string       `json:"name"`
	Columns  []ColumnMeta `json:"columns"`
	RowCount int64        `json:"row_count,omitempty"`
}

type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
