package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet fixture: rows are written from A1 and, when
// TableName is set, the written block is registered as a structured table
type Sheet struct {
	Name      string
	TableName string
	Origin    string // top-left cell, defaults to A1
	Rows      [][]interface{}
}

// WriteWorkbook saves the sheets into dir/name and returns the file path
func WriteWorkbook(t *testing.T, dir, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			t.Fatalf("failed to create sheet %s: %v", sh.Name, err)
		}

		origin := sh.Origin
		if origin == "" {
			origin = "A1"
		}
		col, row, err := excelize.CellNameToCoordinates(origin)
		if err != nil {
			t.Fatalf("invalid origin %s: %v", origin, err)
		}

		width := 0
		for r, values := range sh.Rows {
			cell, _ := excelize.CoordinatesToCellName(col, row+r)
			rowValues := values
			if err := f.SetSheetRow(sh.Name, cell, &rowValues); err != nil {
				t.Fatalf("failed to write row %d: %v", r, err)
			}
			if len(values) > width {
				width = len(values)
			}
		}

		if sh.TableName != "" && len(sh.Rows) > 0 {
			end, _ := excelize.CoordinatesToCellName(col+width-1, row+len(sh.Rows)-1)
			if err := f.AddTable(sh.Name, &excelize.Table{
				Range: origin + ":" + end,
				Name:  sh.TableName,
			}); err != nil {
				t.Fatalf("failed to add table %s: %v", sh.TableName, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// IrisSheet returns the iris sample as a sheet fixture holding the table "iris".
// Numeric cells are written as numbers.
func IrisSheet() Sheet {
	rows := [][]interface{}{toInterfaces(IrisHeader)}
	for _, rec := range IrisRecords() {
		row := make([]interface{}, len(rec))
		for i, cell := range rec {
			row[i] = cell
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				row[i] = f
			}
		}
		rows = append(rows, row)
	}
	return Sheet{Name: "Data", TableName: "iris", Rows: rows}
}

// WriteTableDir writes a table directory (meta.json + data.json) under dir
func WriteTableDir(t *testing.T, dir, name string, columns map[string]string, order []string, rows []map[string]interface{}) string {
	t.Helper()

	tablePath := filepath.Join(dir, name)
	if err := os.MkdirAll(tablePath, 0o755); err != nil {
		t.Fatalf("failed to create table dir: %v", err)
	}

	type columnMeta struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	meta := struct {
		Name    string       `json:"name"`
		Columns []columnMeta `json:"columns"`
	}{Name: name}
	for _, col := range order {
		meta.Columns = append(meta.Columns, columnMeta{Name: col, Type: columns[col]})
	}

	writeJSON(t, filepath.Join(tablePath, "meta.json"), meta)
	if rows != nil {
		writeJSON(t, filepath.Join(tablePath, "data.json"), rows)
	}
	return tablePath
}

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func toInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
