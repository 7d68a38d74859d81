package dialect

import (
	"database/sql"
	"errors"
)

// Logical column kinds used by the schema definition. Dialects map
// these onto the store's physical types.
const (
	KindText    = "TEXT"
	KindInteger = "INTEGER"
	KindBigint  = "BIGINT"
)

// ErrNativeImportUnsupported is returned by BulkImport when the driver
// has no wire-level bulk-import channel.
var ErrNativeImportUnsupported = errors.New("native bulk import is not supported by this driver")

// Dialect abstracts database-specific operations.
type Dialect interface {
	// Query Generation
	TypeName(kind string) string
	InsertQuery(table string, cols []string) string
	DropTableQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, etc.
	LimitQuery(query string, limit int) string

	// BulkImport loads the CSV file at csvPath through the store's own
	// bulk-import channel (COPY, LOAD DATA, bulk copy). Used only as a
	// baseline for comparing against the manual batch loader.
	// Returns the number of rows imported.
	BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error)
}
