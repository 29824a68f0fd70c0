package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Spool     string // registry directory holding job records
	TmpDir    string // fallback temp root for records without one
	Pager     string // interactive viewer default
	Printer   string // non-interactive plain printer
	StatusCmd string // scheduler status command, qstat-compatible
	LogLevel  string
}

// Load reads configuration from the environment, optionally seeded from
// a dotenv file. A missing dotenv file is fine; everything has a
// default.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	return &Config{
		Spool:     getEnv("JOBLOG_SPOOL", defaultSpool()),
		TmpDir:    getEnv("JOBLOG_TMPDIR", ""),
		Pager:     getEnv("JOBLOG_PAGER", "less"),
		Printer:   getEnv("JOBLOG_PRINTER", "cat"),
		StatusCmd: getEnv("JOBLOG_STATUS_CMD", "qstat"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}, nil
}

func defaultSpool() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".joblog")
	}
	return filepath.Join(os.TempDir(), "joblog")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
