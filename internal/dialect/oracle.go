package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) TypeName(kind string) string {
	switch kind {
	case KindInteger:
		return "NUMBER(10)"
	case KindBigint:
		return "NUMBER(19)"
	default:
		return "VARCHAR2(255)"
	}
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *OracleDialect) DropTableQuery(table string) string {
	// Oracle has no DROP TABLE IF EXISTS; swallow ORA-00942 (table does
	// not exist) in a PL/SQL block.
	return fmt.Sprintf(
		"BEGIN EXECUTE IMMEDIATE 'DROP TABLE %s'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -942 THEN RAISE; END IF; END;",
		table)
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) LimitQuery(query string, limit int) string {
	return fmt.Sprintf("%s FETCH FIRST %d ROWS ONLY", query, limit)
}

// BulkImport is unsupported: go-ora exposes no wire-level bulk path
// comparable to COPY or LOAD DATA. Oracle targets are served by the
// manual batch loader only.
func (d *OracleDialect) BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error) {
	return 0, ErrNativeImportUnsupported
}
