package datasource

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/sheetplot/internal/domain/data"
	"github.com/leengari/sheetplot/internal/domain/errors"
	"github.com/leengari/sheetplot/internal/domain/schema"
)

const (
	metaFile = "meta.json"
	dataFile = "data.json"
)

// DirSource serves tables from a directory holding one sub-directory per
// table, each with a meta.json schema and an optional data.json row array
type DirSource struct {
	path   string
	logger *slog.Logger
}

// NewDirSource creates a table store rooted at path
func NewDirSource(path string, logger *slog.Logger) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSource{path: path, logger: logger}
}

func (s *DirSource) Close() error {
	return nil
}

// Tables lists table directories that carry a meta.json
func (s *DirSource) Tables(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.path, entry.Name(), metaFile)); err == nil {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Table loads the named table. Columns always come from meta.json, so the
// headers flag only matters for the #Headers specifier.
func (s *DirSource) Table(ctx context.Context, ref Reference, headers bool) (*schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref.IsRange() {
		return nil, &errors.DataSourceError{
			Source: s.path,
			Ref:    ref.String(),
			Reason: "range references are not supported by a table directory",
		}
	}

	tablePath, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}

	table, meta, err := loadTable(tablePath)
	if err != nil {
		return nil, errors.NewUnreadableTable(s.path, ref.String(), err)
	}
	table.Source = s.path

	if meta.RowCount > 0 && meta.RowCount != int64(table.RowCount()) {
		s.logger.Warn("row_count in meta.json does not match data.json",
			slog.String("table", table.Name),
			slog.Int64("row_count", meta.RowCount),
			slog.Int("rows", table.RowCount()),
		)
	}

	if ref.Specifier == SpecifierHeaders {
		table.Rows = nil
	}

	s.logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("ref", ref.String()),
		slog.Int("rows", table.RowCount()),
	)
	return table, nil
}

// lookup finds the directory for ref.Table, falling back to a
// case-insensitive match
func (s *DirSource) lookup(ctx context.Context, ref Reference) (string, error) {
	exact := filepath.Join(s.path, ref.Table)
	if _, err := os.Stat(filepath.Join(exact, metaFile)); err == nil {
		return exact, nil
	}

	names, err := s.Tables(ctx)
	if err != nil {
		return "", errors.NewUnreadableTable(s.path, ref.String(), err)
	}
	for _, name := range names {
		if strings.EqualFold(name, ref.Table) {
			return filepath.Join(s.path, name), nil
		}
	}
	return "", errors.NewTableNotFound(s.path, ref.String())
}

func loadTable(path string) (*schema.Table, TableMeta, error) {
	metaBytes, err := os.ReadFile(filepath.Join(path, metaFile))
	if err != nil {
		return nil, TableMeta{}, err
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, TableMeta{}, fmt.Errorf("failed to parse %s: %w", metaFile, err)
	}
	if meta.Name == "" {
		meta.Name = filepath.Base(path)
	}

	tableSchema := &schema.TableSchema{
		TableName: meta.Name,
		Columns:   make([]schema.Column, 0, len(meta.Columns)),
	}
	for _, c := range meta.Columns {
		typ := schema.ColumnType(strings.ToUpper(c.Type))
		if typ == "" {
			typ = schema.ColumnTypeText
		}
		tableSchema.Columns = append(tableSchema.Columns, schema.Column{Name: c.Name, Type: typ})
	}

	rows := []data.Row{}
	dataBytes, err := os.ReadFile(filepath.Join(path, dataFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(dataBytes, &rows); err != nil {
			return nil, TableMeta{}, fmt.Errorf("failed to parse %s: %w", dataFile, err)
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return nil, TableMeta{}, err
	}

	return &schema.Table{
		Name:   meta.Name,
		Schema: tableSchema,
		Rows:   rows,
	}, meta, nil
}
