package dialect

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// copyViaStmt streams the data rows of the CSV at csvPath into a
// COPY-style prepared statement (lib/pq CopyIn, go-mssqldb CopyIn).
// Both drivers share the same protocol: one Exec per row, then a final
// empty Exec to flush the buffered stream. Empty fields are sent as NULL.
func copyViaStmt(db *sql.DB, copySQL, csvPath string) (int64, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header row
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin bulk import: %w", err)
	}

	stmt, err := tx.Prepare(copySQL)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("prepare bulk import: %w", err)
	}

	var rows int64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stmt.Close()
			tx.Rollback()
			return 0, fmt.Errorf("read csv record: %w", err)
		}

		args := make([]interface{}, len(record))
		for i, v := range record {
			if v == "" {
				args[i] = nil
			} else {
				args[i] = v
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return 0, fmt.Errorf("bulk import row %d: %w", rows+1, err)
		}
		rows++
	}

	// Final empty Exec flushes the copy buffer.
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		tx.Rollback()
		return 0, fmt.Errorf("flush bulk import: %w", err)
	}
	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("close bulk import: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk import: %w", err)
	}

	return rows, nil
}
