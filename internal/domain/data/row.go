package data

import (
	"encoding/json"
)

// Row represents a single observation of a table
// Key = column name, Value = cell value (float64, string, bool or nil)
type Row struct {
	Data map[string]interface{}
}

// NewRow creates a new Row with the given data
func NewRow(data map[string]interface{}) Row {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Row{Data: data}
}

// Get returns the cell value for column and whether the row has that column at all
func (r Row) Get(column string) (interface{}, bool) {
	v, ok := r.Data[column]
	return v, ok
}

// UnmarshalJSON implements json.Unmarshaler interface
// This allows Row to be unmarshaled from JSON as a map
func (r *Row) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.Data = m
	return nil
}

// MarshalJSON implements json.Marshaler interface
// This allows Row to be marshaled to JSON as a map
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Data)
}
