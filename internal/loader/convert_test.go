package loader

import (
	"errors"
	"testing"

	"ev-loader/internal/dialect"
	"ev-loader/internal/schema"
)

func TestConvertFieldEmptyIsNull(t *testing.T) {
	for _, kind := range []string{dialect.KindText, dialect.KindInteger, dialect.KindBigint} {
		v, err := convertField(kind, "")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", kind, err)
		}
		if v != nil {
			t.Errorf("%s: empty field should convert to nil, got %v", kind, v)
		}
	}
}

func TestConvertFieldText(t *testing.T) {
	v, err := convertField(dialect.KindText, " 5YJ3E1EA7K ")
	if err != nil {
		t.Fatal(err)
	}
	// Text passes through verbatim, whitespace included.
	if v != " 5YJ3E1EA7K " {
		t.Errorf("got %q", v)
	}
}

func TestConvertFieldInteger(t *testing.T) {
	v, err := convertField(dialect.KindInteger, "2019")
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(2019) {
		t.Errorf("got %v (%T)", v, v)
	}

	if _, err := convertField(dialect.KindInteger, "twenty"); err == nil {
		t.Error("non-numeric value should fail")
	}
	// INTEGER is range-checked at 32 bits.
	if _, err := convertField(dialect.KindInteger, "3000000000"); err == nil {
		t.Error("value beyond 32-bit range should fail")
	}
}

func TestConvertFieldBigint(t *testing.T) {
	v, err := convertField(dialect.KindBigint, "3000000000")
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(3000000000) {
		t.Errorf("got %v", v)
	}
}

func TestConvertRecordErrorContext(t *testing.T) {
	cols := schema.Columns()
	record := make([]string, len(cols))
	for i, c := range cols {
		switch c.Kind {
		case dialect.KindInteger, dialect.KindBigint:
			record[i] = "1"
		default:
			record[i] = "x"
		}
		if c.Name == "Model_Year" {
			record[i] = "not-a-year"
		}
	}

	_, err := convertRecord(cols, record, 7)
	var convErr *TypeConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected TypeConversionError, got %v", err)
	}
	if convErr.Row != 7 {
		t.Errorf("row = %d, want 7", convErr.Row)
	}
	if convErr.Column != "Model Year" {
		t.Errorf("column = %q, want source name", convErr.Column)
	}
	if convErr.Value != "not-a-year" {
		t.Errorf("value = %q", convErr.Value)
	}
}
