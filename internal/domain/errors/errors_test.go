package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDataSourceError_TableNotFound(t *testing.T) {
	err := fmt.Errorf("fetch: %w", NewTableNotFound("book.xlsx", "iris[#All]"))

	assert.Assert(t, stderrors.Is(err, ErrTableNotFound))
	assert.Assert(t, !stderrors.Is(err, ErrColumnNotFound))

	var dsErr *DataSourceError
	assert.Assert(t, stderrors.As(err, &dsErr))
	assert.Equal(t, dsErr.Ref, "iris[#All]")
	assert.Equal(t, dsErr.Error(), "data source book.xlsx: table iris[#All]: table not found")
}

func TestDataSourceError_Unreadable(t *testing.T) {
	err := NewUnreadableTable("tables", "iris", fs.ErrPermission)

	assert.Assert(t, !stderrors.Is(err, ErrTableNotFound))
	assert.Assert(t, stderrors.Is(err, fs.ErrPermission))
}

func TestColumnNotFoundError(t *testing.T) {
	var err error = &ColumnNotFoundError{TableName: "iris", ColumnName: "petal_area"}

	assert.Assert(t, stderrors.Is(fmt.Errorf("project: %w", err), ErrColumnNotFound))
	assert.Equal(t, err.Error(), "column 'petal_area' does not exist in table 'iris'")
}
