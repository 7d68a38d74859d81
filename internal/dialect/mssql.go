package dialect

import (
	"database/sql"
	"fmt"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
)

type MSSQLDialect struct{}

// Helper: MSSQL Driver (go-mssqldb) often prefers @p1, @p2 named parameters over ?
// especially when prepared statements are involved or simple Exec.

func (d *MSSQLDialect) TypeName(kind string) string {
	switch kind {
	case KindInteger:
		return "INT"
	case KindBigint:
		return "BIGINT"
	default:
		return "NVARCHAR(255)"
	}
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *MSSQLDialect) DropTableQuery(table string) string {
	// IF EXISTS requires SQL Server 2016+.
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) LimitQuery(query string, limit int) string {
	// Requires an ORDER BY on the wrapped query.
	return fmt.Sprintf("%s OFFSET 0 ROWS FETCH NEXT %d ROWS ONLY", query, limit)
}

// BulkImport uses the TDS bulk copy protocol via mssql.CopyIn.
func (d *MSSQLDialect) BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error) {
	return copyViaStmt(db, mssql.CopyIn(table, mssql.BulkOptions{}, cols...), csvPath)
}
