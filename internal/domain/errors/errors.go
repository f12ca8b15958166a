package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrTableNotFound matches any DataSourceError caused by a missing table
	ErrTableNotFound = stderrors.New("table not found")
	// ErrColumnNotFound matches any ColumnNotFoundError
	ErrColumnNotFound = stderrors.New("column not found")
)

const reasonTableNotFound = "table not found"

// DataSourceError is returned when a table cannot be acquired from a data source
type DataSourceError struct {
	Source string // data source description (file or directory path)
	Ref    string // table reference as requested, e.g. "iris[#All]"
	Reason string // human-readable explanation
	Err    error  // underlying cause (may be nil)
}

func (e *DataSourceError) Error() string {
	msg := fmt.Sprintf("data source %s: table %s: %s", e.Source, e.Ref, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is reports table-not-found errors as ErrTableNotFound
func (e *DataSourceError) Is(target error) bool {
	return target == ErrTableNotFound && e.Reason == reasonTableNotFound
}

// NewTableNotFound reports that ref does not name a table in source
func NewTableNotFound(source, ref string) *DataSourceError {
	return &DataSourceError{
		Source: source,
		Ref:    ref,
		Reason: reasonTableNotFound,
	}
}

// NewUnreadableTable reports that ref exists but could not be read
func NewUnreadableTable(source, ref string, err error) *DataSourceError {
	return &DataSourceError{
		Source: source,
		Ref:    ref,
		Reason: "table could not be read",
		Err:    err,
	}
}

// ColumnNotFoundError is returned when a requested column is absent from a table
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' does not exist in table '%s'", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}
