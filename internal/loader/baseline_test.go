package loader_test

import (
	"errors"
	"testing"

	"ev-loader/internal/dialect"
	"ev-loader/internal/loader"
	"ev-loader/internal/schema"
)

func TestLoadNativeUnsupportedDriver(t *testing.T) {
	db, d := openTestDB(t)
	path := writeCSVFile(t, schema.SourceHeader(), dataRow(t, nil))

	_, err := loader.LoadNative(db, d, path)
	if !errors.Is(err, dialect.ErrNativeImportUnsupported) {
		t.Fatalf("expected ErrNativeImportUnsupported, got %v", err)
	}
	if n := countRows(t, db); n != 0 {
		t.Errorf("unsupported baseline must not write, found %d rows", n)
	}
}
