package loader

import "fmt"

// All four error types are unrecoverable at the loader's level: the
// caller's only remedy is to fix the input (or the store) and re-run
// the whole load.

// SchemaMismatchError reports a CSV header that does not match the
// expected source columns. Nothing has been written when it is raised.
type SchemaMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("csv header does not match expected schema: want %v, got %v", e.Expected, e.Actual)
}

// TypeConversionError reports a field that could not be converted to
// its destination type. Bad values abort the load instead of being
// coerced to NULL, which would silently hide them.
type TypeConversionError struct {
	Row    int    // 1-based data row index
	Column string // source column name
	Value  string
	Err    error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot convert %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *TypeConversionError) Unwrap() error { return e.Err }

// WriteError reports a failed batch write. The batch has been rolled
// back in full; StartRow is the 1-based data row index of its first record.
type WriteError struct {
	StartRow int
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing batch starting at row %d: %v", e.StartRow, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RowCountMismatchError reports that the post-load table count differs
// from the number of records read from the source file.
type RowCountMismatchError struct {
	FileRows  int
	TableRows int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("row count mismatch: csv has %d data rows, table has %d", e.FileRows, e.TableRows)
}
