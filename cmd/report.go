package cmd

import (
	"log"
	"time"

	"ev-loader/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the aggregate reports and export them as Parquet",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		a := &report.Analytics{
			DB:        db,
			Dialect:   d,
			OutputDir: viper.GetString("settings.output_dir"),
		}

		start := time.Now()
		if err := a.Run(); err != nil {
			return err
		}
		log.Printf("Reports Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("output-dir", "", "Directory for Parquet output")
	viper.BindPFlag("settings.output_dir", reportCmd.Flags().Lookup("output-dir"))
}
