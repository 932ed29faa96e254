package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"bloodbank/infrastructure/sqlite"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config drives both the seeding and the checking commands.
type Config struct {
	SQLitePath    string
	MigrationsDir string

	Reset      bool
	RandomSeed *uint64

	ExportXLSX string
	LabelsPDF  string

	LogLevel  string
	LogFormat string
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

// Load reads an optional .env file (existing environment wins) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	c := &Config{
		SQLitePath:    getenv("SQLITE_PATH", sqlite.DefaultPath),
		MigrationsDir: getenv("SQLITE_MIGRATIONS_DIR", ""),
		Reset:         true,
		ExportXLSX:    getenv("SEED_EXPORT_XLSX", ""),
		LabelsPDF:     getenv("SEED_LABELS_PDF", ""),
		LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getenv("LOG_FORMAT", "console")),
	}

	if v := getenv("SEED_RESET", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SEED_RESET %q: %v", ErrInvalidConfig, v, err)
		}
		c.Reset = b
	}
	if v := getenv("SEED_RANDOM_SEED", ""); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SEED_RANDOM_SEED %q: %v", ErrInvalidConfig, v, err)
		}
		c.RandomSeed = &n
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("%w: missing SQLITE_PATH", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ExportXLSX != "" && c.ExportXLSX == c.LabelsPDF {
		return fmt.Errorf("%w: SEED_EXPORT_XLSX and SEED_LABELS_PDF point at the same file", ErrInvalidConfig)
	}
	return nil
}
