package generate_test

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"ev-loader/internal/generate"
	"ev-loader/internal/schema"
)

func TestWriteCSVShape(t *testing.T) {
	var buf bytes.Buffer
	if err := generate.WriteCSV(&buf, 50, 1); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("generated output is not valid csv: %v", err)
	}
	if len(records) != 51 { // header + 50 rows
		t.Fatalf("expected 51 records, got %d", len(records))
	}
	if !reflect.DeepEqual(records[0], schema.SourceHeader()) {
		t.Errorf("header mismatch: %v", records[0])
	}
	for i, rec := range records[1:] {
		if len(rec) != len(schema.Columns()) {
			t.Fatalf("row %d has %d fields, want %d", i+1, len(rec), len(schema.Columns()))
		}
	}
}

func TestWriteCSVDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := generate.WriteCSV(&a, 20, 42); err != nil {
		t.Fatal(err)
	}
	if err := generate.WriteCSV(&b, 20, 42); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same seed produced different output")
	}

	var c bytes.Buffer
	if err := generate.WriteCSV(&c, 20, 43); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Bytes(), c.Bytes()) {
		t.Error("different seeds produced identical output")
	}
}
