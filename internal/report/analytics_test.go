package report_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	_ "modernc.org/sqlite"

	"ev-loader/internal/dialect"
	"ev-loader/internal/report"
	"ev-loader/internal/schema"
)

func seededAnalytics(t *testing.T) *report.Analytics {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	d := dialect.GetDialect("sqlite")
	if err := schema.EnsureTable(db, d); err != nil {
		t.Fatal(err)
	}

	rows := []struct {
		city, postal, make, model string
		year                      int
	}{
		{"Seattle", "98101", "TESLA", "MODEL 3", 2020},
		{"Seattle", "98101", "TESLA", "MODEL 3", 2020},
		{"Seattle", "98102", "TESLA", "MODEL 3", 2020},
		{"Bellevue", "98004", "TESLA", "MODEL Y", 2019},
		{"Bellevue", "98004", "TESLA", "MODEL Y", 2019},
		{"Tacoma", "98402", "NISSAN", "LEAF", 2018},
	}
	for _, r := range rows {
		_, err := db.Exec(
			"INSERT INTO electric_vehicles (City, Postal_Code, Make, Model, Model_Year) VALUES (?, ?, ?, ?, ?)",
			r.city, r.postal, r.make, r.model, r.year)
		if err != nil {
			t.Fatal(err)
		}
	}

	return &report.Analytics{DB: db, Dialect: d, OutputDir: t.TempDir()}
}

func TestCarsPerCity(t *testing.T) {
	a := seededAnalytics(t)
	got, err := a.CarsPerCity()
	if err != nil {
		t.Fatal(err)
	}
	want := []report.CityCount{
		{City: "Seattle", NumElectricCars: 3},
		{City: "Bellevue", NumElectricCars: 2},
		{City: "Tacoma", NumElectricCars: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d cities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopVehicles(t *testing.T) {
	a := seededAnalytics(t)
	got, err := a.TopVehicles(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("limit not applied: got %d rows", len(got))
	}
	if got[0].Model != "MODEL 3" || got[0].Popularity != 3 {
		t.Errorf("top vehicle = %+v", got[0])
	}
	if got[1].Model != "MODEL Y" || got[1].Popularity != 2 {
		t.Errorf("second vehicle = %+v", got[1])
	}
}

func TestPopularByPostalCode(t *testing.T) {
	a := seededAnalytics(t)
	got, err := a.PopularByPostalCode()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("expected one winner per postal code (4), got %d", len(got))
	}
	byPostal := make(map[string]report.PostalPopularity, len(got))
	for _, rec := range got {
		byPostal[rec.PostalCode] = rec
	}
	if rec := byPostal["98101"]; rec.Model != "MODEL 3" || rec.Popularity != 2 {
		t.Errorf("98101 = %+v", rec)
	}
	if rec := byPostal["98004"]; rec.Model != "MODEL Y" || rec.Popularity != 2 {
		t.Errorf("98004 = %+v", rec)
	}
}

func TestCarsByModelYear(t *testing.T) {
	a := seededAnalytics(t)
	got, err := a.CarsByModelYear()
	if err != nil {
		t.Fatal(err)
	}
	want := []report.ModelYearCount{
		{ModelYear: 2020, NumCars: 3},
		{ModelYear: 2019, NumCars: 2},
		{ModelYear: 2018, NumCars: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d years, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRunWritesParquetOutput(t *testing.T) {
	a := seededAnalytics(t)
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{
		"electric_cars_per_city.parquet",
		"top_3_most_popular_vehicles.parquet",
		"popular_vehicle_by_postal_code.parquet",
		filepath.Join("model_year=2020", "electric_cars_2020.parquet"),
		filepath.Join("model_year=2019", "electric_cars_2019.parquet"),
		filepath.Join("model_year=2018", "electric_cars_2018.parquet"),
	} {
		if _, err := os.Stat(filepath.Join(a.OutputDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	// The city report round-trips through parquet intact.
	cities, err := parquet.ReadFile[report.CityCount](filepath.Join(a.OutputDir, "electric_cars_per_city.parquet"))
	if err != nil {
		t.Fatalf("read parquet: %v", err)
	}
	if len(cities) != 3 || cities[0].City != "Seattle" || cities[0].NumElectricCars != 3 {
		t.Errorf("unexpected parquet content: %+v", cities)
	}
}
