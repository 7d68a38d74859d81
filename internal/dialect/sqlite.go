package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteDialect targets modernc.org/sqlite (driver name "sqlite").
// Used for local runs and tests without a database server.
type SQLiteDialect struct{}

func (d *SQLiteDialect) TypeName(kind string) string {
	switch kind {
	case KindInteger:
		return "INTEGER"
	case KindBigint:
		return "BIGINT"
	default:
		return "TEXT"
	}
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *SQLiteDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) LimitQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}

// BulkImport is unsupported: .import is a feature of the sqlite3 shell,
// not of the wire protocol.
func (d *SQLiteDialect) BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error) {
	return 0, ErrNativeImportUnsupported
}
