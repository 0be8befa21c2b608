// Package config loads the migration configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the migration run needs.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// Files is the ordered list of source CSV files to ingest.
	Files []string

	// ResetDB drops and recreates the store before ingesting.
	ResetDB bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables with defaults
// matching the historical migration setup.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DB_PATH", "./data/santantoniari.sqlite")
	v.SetDefault("CSV_FILES", "maggiorenni.csv,minorenni.csv,maggiorenni_nuovi.csv,minorenni_nuovi.csv")
	v.SetDefault("RESET_DB", true)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	cfg := &Config{
		DBPath:   v.GetString("DB_PATH"),
		Files:    splitFiles(v.GetString("CSV_FILES")),
		ResetDB:  v.GetBool("RESET_DB"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("CSV_FILES must name at least one source file")
	}
	return nil
}

func splitFiles(s string) []string {
	var files []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}
