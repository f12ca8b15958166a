package testutil

import (
	"github.com/leengari/sheetplot/internal/domain/data"
	"github.com/leengari/sheetplot/internal/domain/schema"
)

// IrisHeader is the header row of the iris sample
var IrisHeader = []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"}

// IrisRecords returns the first rows of each species of the iris dataset as raw cell text
func IrisRecords() [][]string {
	return [][]string{
		{"5.1", "3.5", "1.4", "0.2", "setosa"},
		{"4.9", "3.0", "1.4", "0.2", "setosa"},
		{"4.7", "3.2", "1.3", "0.2", "setosa"},
		{"4.6", "3.1", "1.5", "0.2", "setosa"},
		{"5.0", "3.6", "1.4", "0.2", "setosa"},
		{"7.0", "3.2", "4.7", "1.4", "versicolor"},
		{"6.4", "3.2", "4.5", "1.5", "versicolor"},
		{"6.9", "3.1", "4.9", "1.5", "versicolor"},
		{"5.5", "2.3", "4.0", "1.3", "versicolor"},
		{"6.3", "3.3", "6.0", "2.5", "virginica"},
		{"5.8", "2.7", "5.1", "1.9", "virginica"},
		{"7.1", "3.0", "5.9", "2.1", "virginica"},
		{"6.3", "2.9", "5.6", "1.8", "virginica"},
	}
}

// CreateIrisTable creates the iris sample table
func CreateIrisTable() *schema.Table {
	return schema.NewTable("iris", "memory", IrisHeader, IrisRecords())
}

// CreateTable creates a table with the given columns; each row map is copied as is
func CreateTable(name string, columns []schema.Column, rows ...map[string]interface{}) *schema.Table {
	table := &schema.Table{
		Name:   name,
		Source: "memory",
		Schema: &schema.TableSchema{
			TableName: name,
			Columns:   columns,
		},
		Rows: make([]data.Row, 0, len(rows)),
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, data.NewRow(r))
	}
	return table
}

// CreateExampleTable is the four-row table {sepal_width, species}
// with two setosa and two versicolor observations
func CreateExampleTable() *schema.Table {
	return CreateTable("iris",
		[]schema.Column{
			{Name: "sepal_width", Type: schema.ColumnTypeFloat},
			{Name: "species", Type: schema.ColumnTypeText},
		},
		map[string]interface{}{"sepal_width": 3.5, "species": "setosa"},
		map[string]interface{}{"sepal_width": 3.0, "species": "setosa"},
		map[string]interface{}{"sepal_width": 3.2, "species": "versicolor"},
		map[string]interface{}{"sepal_width": 2.8, "species": "versicolor"},
	)
}
