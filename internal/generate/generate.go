package generate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"ev-loader/internal/schema"
)

// Value pools for fields where realistic shapes matter more than
// variety. Mirrors the Washington State EV population dataset.
var (
	counties = []string{"King", "Snohomish", "Pierce", "Thurston", "Clark", "Kitsap", "Spokane", "Whatcom"}

	evTypes = []string{
		"Battery Electric Vehicle (BEV)",
		"Plug-in Hybrid Electric Vehicle (PHEV)",
	}

	cafvEligibility = []string{
		"Clean Alternative Fuel Vehicle Eligible",
		"Not eligible due to low battery range",
		"Eligibility unknown as battery range has not been researched",
	}

	utilities = []string{
		"PUGET SOUND ENERGY INC",
		"CITY OF SEATTLE - (WA)",
		"PACIFICORP",
		"AVISTA CORP",
		"BONNEVILLE POWER ADMINISTRATION",
	}
)

// WriteCSV emits a well-formed EV population CSV: the expected header
// plus rows synthetic records. The same seed always produces the same
// bytes. Roughly 1 in 12 Postal Code and Legislative District fields
// are left empty to exercise NULL handling downstream.
func WriteCSV(out io.Writer, rows int, seed uint64) error {
	faker := gofakeit.New(int64(seed))

	w := csv.NewWriter(out)
	if err := w.Write(schema.SourceHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(record(faker)); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func record(f *gofakeit.Faker) []string {
	postal := f.Zip()
	if f.Number(0, 11) == 0 {
		postal = ""
	}
	district := strconv.Itoa(f.Number(1, 49))
	if f.Number(0, 11) == 0 {
		district = ""
	}

	// Base MSRP is unreported (zero) for most of the real dataset.
	msrp := "0"
	if f.Number(0, 9) == 0 {
		msrp = strconv.Itoa(f.Number(30000, 150000))
	}

	lon := f.Float64Range(-124.5, -117.0)
	lat := f.Float64Range(45.5, 49.0)

	return []string{
		strings.ToUpper(f.LetterN(3)) + f.DigitN(7), // VIN (1-10)
		f.RandomString(counties),
		f.City(),
		"WA",
		postal,
		strconv.Itoa(f.Number(2011, 2025)), // Model Year
		strings.ToUpper(f.CarMaker()),
		strings.ToUpper(f.CarModel()),
		f.RandomString(evTypes),
		f.RandomString(cafvEligibility),
		strconv.Itoa(f.Number(0, 350)), // Electric Range
		msrp,
		district,
		strconv.Itoa(f.Number(100000000, 999999999)), // DOL Vehicle ID
		fmt.Sprintf("POINT (%.5f %.5f)", lon, lat),
		f.RandomString(utilities),
		f.DigitN(11), // 2020 Census Tract
	}
}
