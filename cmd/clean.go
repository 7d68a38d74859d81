package cmd

import (
	"log"

	"ev-loader/internal/schema"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the destination table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := db.Exec(schema.DropQuery(d)); err != nil {
			return err
		}
		log.Printf("Dropped table %s", schema.TableName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}
