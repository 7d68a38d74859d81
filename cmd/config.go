package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// ResolveDBConfig returns the target database configuration.
// Precedence: --dsn flag, then the active entry of the databases list.
func ResolveDBConfig() (*DBConfig, error) {
	// Flag (or single database.* config block) takes precedence.
	if dsn := viper.GetString("database.dsn"); dsn != "" {
		driver := viper.GetString("database.driver")
		if driver == "" {
			driver = detectDriver(dsn)
		}
		return &DBConfig{Name: "CLI", Driver: driver, DSN: dsn, Active: true}, nil
	}

	var configs []DBConfig
	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0
	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no target database: pass --dsn or mark one databases entry active: true")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	if activeConfig.Driver == "" {
		activeConfig.Driver = detectDriver(activeConfig.DSN)
	}
	return activeConfig, nil
}
