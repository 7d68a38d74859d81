package loader

import (
	"strconv"

	"ev-loader/internal/dialect"
	"ev-loader/internal/schema"
)

// convertField converts one raw CSV field to its destination logical
// type. Empty fields become NULL for every kind. This is the only
// place numeric parsing rules live, so it can be tested without I/O.
func convertField(kind, val string) (interface{}, error) {
	if val == "" {
		return nil, nil
	}
	switch kind {
	case dialect.KindInteger:
		n, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return nil, err
		}
		return n, nil
	case dialect.KindBigint:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return val, nil
	}
}

// convertRecord converts a raw CSV record positionally against the
// column descriptors. row is the 1-based data row index, used only for
// error context.
func convertRecord(cols []schema.Column, record []string, row int) ([]interface{}, error) {
	values := make([]interface{}, len(cols))
	for i, c := range cols {
		v, err := convertField(c.Kind, record[i])
		if err != nil {
			return nil, &TypeConversionError{Row: row, Column: c.Source, Value: record[i], Err: err}
		}
		values[i] = v
	}
	return values, nil
}
