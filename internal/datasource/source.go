package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/sheetplot/internal/domain/schema"
)

// DataSource is the host's data-retrieval boundary
type DataSource interface {
	// Table returns the full contents of ref. With headers set, the first
	// row of the addressed region names the columns.
	Table(ctx context.Context, ref Reference, headers bool) (*schema.Table, error)
	// Tables lists the named tables the source exposes
	Tables(ctx context.Context) ([]string, error)
	Close() error
}

// Open picks a data source for path: a directory is a table store,
// an Excel workbook is read with excelize
func Open(path string, logger *slog.Logger) (DataSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data source: %w", err)
	}

	if info.IsDir() {
		return NewDirSource(path, logger), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return OpenXLSX(path, logger)
	}
	return nil, fmt.Errorf("unsupported data source %s: expected a directory or an Excel workbook", path)
}
