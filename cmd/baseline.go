package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ev-loader/internal/dialect"
	"ev-loader/internal/loader"
	"ev-loader/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Load via the store's native bulk import, for comparison",
	Long: `Loads the same CSV through the database's own bulk-import channel
(COPY, LOAD DATA, bulk copy). Used only to compare correctness and
speed against the manual batch loader.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		csvPath := viper.GetString("settings.csv_path")

		log.Printf("Recreating table %s...", schema.TableName)
		if err := schema.EnsureTable(db, d); err != nil {
			return err
		}

		log.Printf("Starting native bulk import: %s", csvPath)
		start := time.Now()

		outcome, err := loader.LoadNative(db, d, csvPath)
		if errors.Is(err, dialect.ErrNativeImportUnsupported) {
			return fmt.Errorf("this driver has no native bulk import; use the manual loader: %w", err)
		}
		if err != nil {
			return err
		}

		elapsed := time.Since(start)
		fmt.Println("\n📊 Baseline Summary:")
		fmt.Printf("[✓] %-20s : %d rows imported, %d rows in table\n",
			schema.TableName, outcome.RowsRead, outcome.RowsWritten)
		log.Printf("Baseline Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(baselineCmd)
}
