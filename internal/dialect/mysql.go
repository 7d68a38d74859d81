package dialect

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type MysqlDialect struct{}

func (d *MysqlDialect) TypeName(kind string) string {
	switch kind {
	case KindInteger:
		return "INT"
	case KindBigint:
		return "BIGINT"
	default:
		// VARCHAR instead of TEXT so the columns stay usable in GROUP BY
		// without prefix-index concerns.
		return "VARCHAR(255)"
	}
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) LimitQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}

// BulkImport uses LOAD DATA LOCAL INFILE with a registered reader
// handler, so the file is streamed from this process instead of read by
// the server. Requires allowAllFiles/localInfile enabled in the DSN.
func (d *MysqlDialect) BulkImport(db *sql.DB, table string, cols []string, csvPath string) (int64, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	handler := "bulkimport"
	mysql.RegisterReaderHandler(handler, func() io.Reader { return f })
	defer mysql.DeregisterReaderHandler(handler)

	query := fmt.Sprintf(
		"LOAD DATA LOCAL INFILE 'Reader::%s' INTO TABLE %s "+
			"FIELDS TERMINATED BY ',' OPTIONALLY ENCLOSED BY '\"' "+
			"LINES TERMINATED BY '\\n' IGNORE 1 LINES (%s)",
		handler, table, strings.Join(cols, ", "))

	res, err := db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("load data infile: %w", err)
	}
	return res.RowsAffected()
}
