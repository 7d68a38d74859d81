package loader

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ev-loader/internal/dialect"
	"ev-loader/internal/schema"
)

// DefaultBatchSize bounds memory while keeping per-transaction
// overhead amortized.
const DefaultBatchSize = 5000

// Outcome is the loader's final report: rows read from the source file
// against rows present in the destination table after the load.
type Outcome struct {
	RowsRead    int
	RowsWritten int
}

// Loader ingests a delimited file into the destination table without
// going through the store's native bulk-import path. It owns the table
// exclusively for the duration of a Load call.
type Loader struct {
	DB        *sql.DB
	Dialect   dialect.Dialect
	BatchSize int

	// OnBatch, when set, is called after each committed batch with the
	// total number of rows processed so far.
	OnBatch func(rows int)
}

func New(db *sql.DB, d dialect.Dialect, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{DB: db, Dialect: d, BatchSize: batchSize}
}

// Load streams the CSV at path into the destination table: header
// validation, per-field type conversion, bounded batches written one
// transaction each, and a final row-count check against the file.
// An Outcome is returned only when every step succeeded.
func (l *Loader) Load(path string) (Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return Outcome{}, fmt.Errorf("read csv header: %w", err)
	}
	cols := schema.Columns()
	if err := validateHeader(cols, header); err != nil {
		return Outcome{}, err
	}

	insertQuery := l.Dialect.InsertQuery(schema.TableName, schema.ColumnNames())

	batch := make([][]interface{}, 0, l.BatchSize)
	rowsRead := 0
	batchStart := 1 // data row index of the first record in the current batch

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Outcome{}, fmt.Errorf("read csv record: %w", err)
		}

		rowsRead++
		values, err := convertRecord(cols, record, rowsRead)
		if err != nil {
			return Outcome{}, err
		}

		batch = append(batch, values)
		if len(batch) == l.BatchSize {
			if err := l.flush(insertQuery, batch, batchStart); err != nil {
				return Outcome{}, err
			}
			if l.OnBatch != nil {
				l.OnBatch(rowsRead)
			}
			batch = batch[:0]
			batchStart = rowsRead + 1
		}
	}

	if len(batch) > 0 {
		if err := l.flush(insertQuery, batch, batchStart); err != nil {
			return Outcome{}, err
		}
		if l.OnBatch != nil {
			l.OnBatch(rowsRead)
		}
	}

	// End-to-end check: runs even when every batch reported success, to
	// catch anything that silently dropped rows along the way.
	written, err := tableCount(l.DB)
	if err != nil {
		return Outcome{}, err
	}
	if written != rowsRead {
		return Outcome{}, &RowCountMismatchError{FileRows: rowsRead, TableRows: written}
	}

	return Outcome{RowsRead: rowsRead, RowsWritten: written}, nil
}

// flush writes one batch inside a single transaction. Any failure
// rolls the whole batch back; partial batches are never left visible.
func (l *Loader) flush(query string, batch [][]interface{}, startRow int) error {
	tx, err := l.DB.Begin()
	if err != nil {
		return &WriteError{StartRow: startRow, Err: err}
	}
	for _, values := range batch {
		if _, err := tx.Exec(query, values...); err != nil {
			tx.Rollback()
			return &WriteError{StartRow: startRow, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &WriteError{StartRow: startRow, Err: err}
	}
	return nil
}

func validateHeader(cols []schema.Column, header []string) error {
	expected := make([]string, len(cols))
	for i, c := range cols {
		expected[i] = c.Source
	}
	if len(header) != len(expected) {
		return &SchemaMismatchError{Expected: expected, Actual: header}
	}
	for i := range expected {
		if header[i] != expected[i] {
			return &SchemaMismatchError{Expected: expected, Actual: header}
		}
	}
	return nil
}

func tableCount(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.TableName)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count destination rows: %w", err)
	}
	return n, nil
}
