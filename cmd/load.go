package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"ev-loader/internal/loader"
	"ev-loader/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the EV population CSV through the manual batch loader",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := schema.Validate(); err != nil {
			return err
		}

		db, d, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		csvPath := viper.GetString("settings.csv_path")
		batchSize := viper.GetInt("settings.batch_size")

		log.Printf("Recreating table %s...", schema.TableName)
		if err := schema.EnsureTable(db, d); err != nil {
			return err
		}

		// Pre-count data rows so the bar has a real total. The loader
		// itself streams the file in a single pass.
		total, err := countDataRows(csvPath)
		if err != nil {
			return err
		}

		log.Printf("Starting batch load: %s (%d rows, batch_size=%d)", csvPath, total, batchSize)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(max(total, 1)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Loading:   "
		})

		l := loader.New(db, d, batchSize)
		l.OnBatch = func(rows int) {
			bar.Set(rows)
		}

		outcome, err := l.Load(csvPath)
		uiprogress.Stop()
		if err != nil {
			return err
		}

		elapsed := time.Since(start)
		fmt.Println("\n📊 Load Summary:")
		fmt.Printf("[✓] %-20s : %d rows read, %d rows written (verified)\n",
			schema.TableName, outcome.RowsRead, outcome.RowsWritten)
		log.Printf("Load Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)

	loadCmd.Flags().String("csv", "", "Path to the source CSV file")
	loadCmd.Flags().Int("batch-size", 0, "Records per transaction batch")

	viper.BindPFlag("settings.csv_path", loadCmd.Flags().Lookup("csv"))
	viper.BindPFlag("settings.batch_size", loadCmd.Flags().Lookup("batch-size"))
}

// countDataRows counts the data lines of the CSV (excluding the header).
func countDataRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan csv: %w", err)
	}
	if count > 0 {
		count-- // header
	}
	return count, nil
}
