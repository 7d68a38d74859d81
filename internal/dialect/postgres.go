package dialect

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresDialect struct{}

func (d *PostgresDialect) TypeName(kind string) string {
	switch kind {
	case KindInteger:
		return "INTEGER"
	case KindBigint:
		return "BIGINT"
	default:
		return "TEXT"
	}
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) LimitQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}

// BulkImport uses the COPY FROM STDIN protocol via pq.CopyIn. The server
// parses the text fields itself, so no client-side type conversion runs.
func (d *PostgresDialect) BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error) {
	return copyViaStmt(db, pq.CopyIn(table, cols...), csvPath)
}
