package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ev-loader/internal/dialect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "ev-loader",
	Short: "Electric vehicle registration data loader & analytics",
	Long: `
  _______     __     _     ___    _    ____  _____ ____
 | ____\ \   / /    | |   / _ \  / \  |  _ \| ____|  _ \
 |  _|  \ \ / /_____| |  | | | |/ _ \ | | | |  _| | |_) |
 | |___  \ V /______| |__| |_| / ___ \| |_| | |___|  _ <
 |_____|  \_/       |_____\___/_/   \_\____/|_____|_| \_\

EV LOADER - Batch CSV Loader & Analytics for EV Registrations
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ev-loader.yaml)")
	RootCmd.PersistentFlags().String("dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().String("driver", "", "Database driver (postgres, mysql, sqlserver, oracle, sqlite)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))

	viper.SetDefault("settings.batch_size", 5000)
	viper.SetDefault("settings.csv_path", "data/Electric_Vehicle_Population_Data.csv")
	viper.SetDefault("settings.output_dir", "analytics_output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("ev-loader")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// openDatabase resolves the target database (flags > config file),
// opens it and returns the matching dialect.
func openDatabase() (*sql.DB, dialect.Dialect, error) {
	config, err := ResolveDBConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fmt.Printf("🔌 Connected to %s (%s)\n", config.Name, config.Driver)
	return db, dialect.GetDialect(config.Driver), nil
}

// detectDriver guesses the driver from the DSN shape when no explicit
// driver was configured.
func detectDriver(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "sslmode"):
		return "postgres"
	case strings.HasPrefix(dsn, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(dsn, "oracle://"):
		return "oracle"
	case dsn == ":memory:" || strings.HasSuffix(dsn, ".db") || strings.HasSuffix(dsn, ".sqlite"):
		return "sqlite"
	default:
		return "mysql"
	}
}
