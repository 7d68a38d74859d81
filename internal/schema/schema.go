package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"ev-loader/internal/dialect"
)

// TableName is the destination table for the EV population dataset.
const TableName = "electric_vehicles"

// Column maps one CSV header to a destination column and its logical type.
type Column struct {
	Source string // column name in the CSV header
	Name   string // column name in the destination table
	Kind   string // dialect.KindText, KindInteger or KindBigint
}

// columns is the single source of truth for the table shape. The order
// here defines both the DDL column order and the positional mapping
// used when converting a CSV record into a destination row.
var columns = []Column{
	{Source: "VIN (1-10)", Name: "VIN", Kind: dialect.KindText},
	{Source: "County", Name: "County", Kind: dialect.KindText},
	{Source: "City", Name: "City", Kind: dialect.KindText},
	{Source: "State", Name: "State", Kind: dialect.KindText},
	{Source: "Postal Code", Name: "Postal_Code", Kind: dialect.KindText},
	{Source: "Model Year", Name: "Model_Year", Kind: dialect.KindInteger},
	{Source: "Make", Name: "Make", Kind: dialect.KindText},
	{Source: "Model", Name: "Model", Kind: dialect.KindText},
	{Source: "Electric Vehicle Type", Name: "Electric_Vehicle_Type", Kind: dialect.KindText},
	{Source: "Clean Alternative Fuel Vehicle (CAFV) Eligibility", Name: "CAFV_Eligibility", Kind: dialect.KindText},
	{Source: "Electric Range", Name: "Electric_Range", Kind: dialect.KindInteger},
	{Source: "Base MSRP", Name: "Base_MSRP", Kind: dialect.KindInteger},
	{Source: "Legislative District", Name: "Legislative_District", Kind: dialect.KindText},
	{Source: "DOL Vehicle ID", Name: "DOL_Vehicle_ID", Kind: dialect.KindBigint},
	{Source: "Vehicle Location", Name: "Vehicle_Location", Kind: dialect.KindText},
	{Source: "Electric Utility", Name: "Electric_Utility", Kind: dialect.KindText},
	{Source: "2020 Census Tract", Name: "Census_Tract", Kind: dialect.KindText},
}

// Columns returns the ordered column descriptors. The caller gets a
// copy; the mapping itself is never mutated after process start.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// SourceHeader returns the expected CSV header names in order.
func SourceHeader() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Source
	}
	return out
}

// ColumnNames returns the destination column names in order.
func ColumnNames() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}

// Validate checks the static mapping for configuration errors. A
// failure here is fatal at startup, never at load time.
func Validate() error {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if c.Source == "" || c.Name == "" {
			return fmt.Errorf("schema: column with empty name (source=%q, destination=%q)", c.Source, c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("schema: duplicate destination column %q", c.Name)
		}
		seen[c.Name] = true
		switch c.Kind {
		case dialect.KindText, dialect.KindInteger, dialect.KindBigint:
		default:
			return fmt.Errorf("schema: column %q has unknown kind %q", c.Name, c.Kind)
		}
	}
	return nil
}

// CreateQuery builds the CREATE TABLE statement in descriptor order,
// with types mapped through the dialect.
func CreateQuery(d dialect.Dialect) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = fmt.Sprintf("%s %s", c.Name, d.TypeName(c.Kind))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", TableName, strings.Join(defs, ", "))
}

// DropQuery builds the drop-if-exists statement for the table.
func DropQuery(d dialect.Dialect) string {
	return d.DropTableQuery(TableName)
}

// EnsureTable recreates the destination table from scratch. Running it
// repeatedly is safe and always leaves an empty table behind.
func EnsureTable(db *sql.DB, d dialect.Dialect) error {
	if _, err := db.Exec(DropQuery(d)); err != nil {
		return fmt.Errorf("drop table %s: %w", TableName, err)
	}
	if _, err := db.Exec(CreateQuery(d)); err != nil {
		return fmt.Errorf("create table %s: %w", TableName, err)
	}
	return nil
}
