package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/leengari/sheetplot/internal/domain/errors"
	"github.com/leengari/sheetplot/internal/domain/schema"
)

// XLSXSource reads structured tables and sheet ranges from an Excel workbook
type XLSXSource struct {
	path   string
	file   *excelize.File
	logger *slog.Logger
}

// OpenXLSX opens the workbook at path
func OpenXLSX(path string, logger *slog.Logger) (*XLSXSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return NewXLSXSource(f, path, logger), nil
}

// NewXLSXSource wraps an already opened workbook; name is used in errors and logs
func NewXLSXSource(f *excelize.File, name string, logger *slog.Logger) *XLSXSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXSource{path: name, file: f, logger: logger}
}

// Close releases the workbook
func (s *XLSXSource) Close() error {
	return s.file.Close()
}

// Tables lists every structured table in the workbook, sheet by sheet
func (s *XLSXSource) Tables(ctx context.Context) ([]string, error) {
	var names []string
	for _, sheet := range s.file.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tables, err := s.file.GetTables(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables on sheet %s: %w", sheet, err)
		}
		for _, tbl := range tables {
			names = append(names, tbl.Name)
		}
	}
	return names, nil
}

// Table resolves ref against the workbook and returns its contents
func (s *XLSXSource) Table(ctx context.Context, ref Reference, headers bool) (*schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet, rng, name, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	grid, err := s.readRange(sheet, rng)
	if err != nil {
		return nil, errors.NewUnreadableTable(s.path, ref.String(), err)
	}

	header, records, err := split(grid, ref, headers, rng)
	if err != nil {
		return nil, errors.NewUnreadableTable(s.path, ref.String(), err)
	}

	table := schema.NewTable(name, s.path, header, records)
	s.logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("ref", ref.String()),
		slog.String("sheet", sheet),
		slog.Int("rows", table.RowCount()),
	)
	return table, nil
}

// resolve finds the sheet and cell range for ref. Table names are
// matched case-insensitively, the way Excel treats them.
func (s *XLSXSource) resolve(ref Reference) (sheet, rng, name string, err error) {
	if ref.IsRange() {
		idx, err := s.file.GetSheetIndex(ref.Sheet)
		if err != nil || idx < 0 {
			return "", "", "", errors.NewTableNotFound(s.path, ref.String())
		}
		rng = ref.Range
		if !strings.Contains(rng, ":") {
			rng = rng + ":" + rng
		}
		return ref.Sheet, rng, ref.Sheet, nil
	}

	for _, sh := range s.file.GetSheetList() {
		tables, err := s.file.GetTables(sh)
		if err != nil {
			return "", "", "", errors.NewUnreadableTable(s.path, ref.String(), err)
		}
		for _, tbl := range tables {
			if strings.EqualFold(tbl.Name, ref.Table) {
				return sh, strings.ReplaceAll(tbl.Range, "$", ""), tbl.Name, nil
			}
		}
	}
	return "", "", "", errors.NewTableNotFound(s.path, ref.String())
}

// readRange returns the cells of rng as a dense grid of raw values
func (s *XLSXSource) readRange(sheet, rng string) ([][]string, error) {
	col1, row1, col2, row2, err := rangeCoordinates(rng)
	if err != nil {
		return nil, err
	}

	rows, err := s.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	width := col2 - col1 + 1
	grid := make([][]string, 0, row2-row1+1)
	for r := row1; r <= row2; r++ {
		line := make([]string, width)
		if r-1 < len(rows) {
			src := rows[r-1]
			for c := col1; c <= col2 && c-1 < len(src); c++ {
				line[c-col1] = src[c-1]
			}
		}
		grid = append(grid, line)
	}
	return grid, nil
}

// split separates the header row from the data rows according to the
// specifier and the headers flag. Without headers, columns are named by
// their spreadsheet letter.
func split(grid [][]string, ref Reference, headers bool, rng string) ([]string, [][]string, error) {
	if len(grid) == 0 {
		return nil, nil, fmt.Errorf("range %s is empty", rng)
	}

	letters, err := columnLetters(rng, len(grid[0]))
	if err != nil {
		return nil, nil, err
	}

	// plain ranges carry no header row of their own
	if ref.IsRange() {
		if headers {
			return grid[0], grid[1:], nil
		}
		return letters, grid, nil
	}

	switch ref.Specifier {
	case SpecifierHeaders:
		if headers {
			return grid[0], nil, nil
		}
		return letters, grid[:1], nil
	case SpecifierData:
		if headers {
			return grid[0], grid[1:], nil
		}
		return letters, grid[1:], nil
	default:
		if headers {
			return grid[0], grid[1:], nil
		}
		return letters, grid, nil
	}
}

func columnLetters(rng string, width int) ([]string, error) {
	col1, _, _, _, err := rangeCoordinates(rng)
	if err != nil {
		return nil, err
	}
	letters := make([]string, width)
	for i := range letters {
		name, err := excelize.ColumnNumberToName(col1 + i)
		if err != nil {
			return nil, err
		}
		letters[i] = name
	}
	return letters, nil
}

// rangeCoordinates converts "B2:E9" (or a single cell) to 1-based
// corner coordinates, normalized so col1 <= col2 and row1 <= row2
func rangeCoordinates(rng string) (col1, row1, col2, row2 int, err error) {
	first, last, ok := strings.Cut(rng, ":")
	if !ok {
		last = first
	}
	if col1, row1, err = excelize.CellNameToCoordinates(first); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range %s: %w", rng, err)
	}
	if col2, row2, err = excelize.CellNameToCoordinates(last); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range %s: %w", rng, err)
	}
	if col1 > col2 {
		col1, col2 = col2, col1
	}
	if row1 > row2 {
		row1, row2 = row2, row1
	}
	return col1, row1, col2, row2, nil
}
