package loader

import (
	"database/sql"

	"ev-loader/internal/dialect"
	"ev-loader/internal/schema"
)

// LoadNative loads the same file through the store's own bulk-import
// channel. It exists purely as a correctness and performance baseline
// for the manual batch loader, which never calls it.
func LoadNative(db *sql.DB, d dialect.Dialect, csvPath string) (Outcome, error) {
	imported, err := d.BulkImport(db, schema.TableName, schema.ColumnNames(), csvPath)
	if err != nil {
		return Outcome{}, err
	}
	written, err := tableCount(db)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{RowsRead: int(imported), RowsWritten: written}, nil
}
