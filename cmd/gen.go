package cmd

import (
	"fmt"
	"log"
	"os"

	"ev-loader/internal/generate"

	"github.com/spf13/cobra"
)

var (
	genRows int
	genOut  string
	genSeed uint64
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic EV population CSV",
	Long: `Writes a synthetic CSV with the expected header and shape of the
EV population dataset. Useful for fixtures and benchmarking without the
real export. The same seed always produces the same file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(genOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", genOut, err)
		}

		if err := generate.WriteCSV(f, genRows, genSeed); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		log.Printf("Wrote %d synthetic rows to %s", genRows, genOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(genCmd)

	genCmd.Flags().IntVar(&genRows, "rows", 10000, "Number of records to generate")
	genCmd.Flags().StringVar(&genOut, "out", "data/synthetic_vehicles.csv", "Output file path")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 1, "Random seed (same seed, same file)")
}
