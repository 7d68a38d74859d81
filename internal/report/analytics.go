package report

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ev-loader/internal/dialect"
	"ev-loader/internal/schema"
)

// Result row types. The parquet tags drive the export step.

type CityCount struct {
	City            string `parquet:"City"`
	NumElectricCars int64  `parquet:"num_electric_cars"`
}

type VehiclePopularity struct {
	Make       string `parquet:"Make"`
	Model      string `parquet:"Model"`
	Popularity int64  `parquet:"popularity"`
}

type PostalPopularity struct {
	PostalCode string `parquet:"Postal_Code"`
	Make       string `parquet:"Make"`
	Model      string `parquet:"Model"`
	Popularity int64  `parquet:"popularity"`
}

type ModelYearCount struct {
	ModelYear int32 `parquet:"Model_Year"`
	NumCars   int64 `parquet:"num_cars"`
}

// Analytics runs the aggregate reports against the loaded table and
// writes each result set as a Parquet file under OutputDir. It only
// reads the table; the loader guarantees it is complete and typed by
// the time reports run.
type Analytics struct {
	DB        *sql.DB
	Dialect   dialect.Dialect
	OutputDir string
}

// CarsPerCity counts registrations per city, most first.
func (a *Analytics) CarsPerCity() ([]CityCount, error) {
	query := fmt.Sprintf(
		"SELECT City, COUNT(*) AS num_electric_cars FROM %s GROUP BY City ORDER BY num_electric_cars DESC",
		schema.TableName)

	rows, err := a.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("cars per city: %w", err)
	}
	defer rows.Close()

	var out []CityCount
	for rows.Next() {
		var city sql.NullString
		var rec CityCount
		if err := rows.Scan(&city, &rec.NumElectricCars); err != nil {
			return nil, fmt.Errorf("scan city count: %w", err)
		}
		rec.City = city.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TopVehicles returns the n most frequent make/model pairs.
func (a *Analytics) TopVehicles(n int) ([]VehiclePopularity, error) {
	query := a.Dialect.LimitQuery(fmt.Sprintf(
		"SELECT Make, Model, COUNT(*) AS popularity FROM %s GROUP BY Make, Model ORDER BY popularity DESC",
		schema.TableName), n)

	rows, err := a.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("top vehicles: %w", err)
	}
	defer rows.Close()

	var out []VehiclePopularity
	for rows.Next() {
		var mk, md sql.NullString
		var rec VehiclePopularity
		if err := rows.Scan(&mk, &md, &rec.Popularity); err != nil {
			return nil, fmt.Errorf("scan vehicle popularity: %w", err)
		}
		rec.Make, rec.Model = mk.String, md.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PopularByPostalCode returns the most frequent make/model in each
// postal code, via a ROW_NUMBER window over the grouped counts.
func (a *Analytics) PopularByPostalCode() ([]PostalPopularity, error) {
	query := fmt.Sprintf(`SELECT Postal_Code, Make, Model, popularity FROM (
		SELECT Postal_Code, Make, Model, COUNT(*) AS popularity,
		       ROW_NUMBER() OVER (PARTITION BY Postal_Code ORDER BY COUNT(*) DESC) AS rn
		FROM %s
		GROUP BY Postal_Code, Make, Model
	) ranked WHERE rn = 1`, schema.TableName)

	rows, err := a.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("popular by postal code: %w", err)
	}
	defer rows.Close()

	var out []PostalPopularity
	for rows.Next() {
		var pc, mk, md sql.NullString
		var rec PostalPopularity
		if err := rows.Scan(&pc, &mk, &md, &rec.Popularity); err != nil {
			return nil, fmt.Errorf("scan postal popularity: %w", err)
		}
		rec.PostalCode, rec.Make, rec.Model = pc.String, mk.String, md.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CarsByModelYear counts registrations per model year, most first.
func (a *Analytics) CarsByModelYear() ([]ModelYearCount, error) {
	query := fmt.Sprintf(
		"SELECT Model_Year, COUNT(*) AS num_cars FROM %s GROUP BY Model_Year ORDER BY num_cars DESC",
		schema.TableName)

	rows, err := a.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("cars by model year: %w", err)
	}
	defer rows.Close()

	var out []ModelYearCount
	for rows.Next() {
		var year sql.NullInt32
		var rec ModelYearCount
		if err := rows.Scan(&year, &rec.NumCars); err != nil {
			return nil, fmt.Errorf("scan model year count: %w", err)
		}
		rec.ModelYear = year.Int32
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Run executes every report and writes the results under OutputDir.
// Model-year counts are additionally partitioned into
// model_year=<year> directories.
func (a *Analytics) Run() error {
	if err := os.MkdirAll(a.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	log.Println("Counting electric cars per city...")
	cities, err := a.CarsPerCity()
	if err != nil {
		return err
	}
	if err := writeParquet(filepath.Join(a.OutputDir, "electric_cars_per_city.parquet"), cities); err != nil {
		return err
	}

	log.Println("Finding the top 3 most popular vehicles...")
	top, err := a.TopVehicles(3)
	if err != nil {
		return err
	}
	if err := writeParquet(filepath.Join(a.OutputDir, "top_3_most_popular_vehicles.parquet"), top); err != nil {
		return err
	}

	log.Println("Finding the most popular vehicle per postal code...")
	postal, err := a.PopularByPostalCode()
	if err != nil {
		return err
	}
	if err := writeParquet(filepath.Join(a.OutputDir, "popular_vehicle_by_postal_code.parquet"), postal); err != nil {
		return err
	}

	log.Println("Counting electric cars by model year...")
	years, err := a.CarsByModelYear()
	if err != nil {
		return err
	}
	for _, rec := range years {
		if rec.ModelYear == 0 {
			continue // rows with no model year have no partition
		}
		dir := filepath.Join(a.OutputDir, fmt.Sprintf("model_year=%d", rec.ModelYear))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create partition dir: %w", err)
		}
		name := fmt.Sprintf("electric_cars_%d.parquet", rec.ModelYear)
		if err := writeParquet(filepath.Join(dir, name), []ModelYearCount{rec}); err != nil {
			return err
		}
	}

	log.Printf("Reports written to %s", a.OutputDir)
	return nil
}
