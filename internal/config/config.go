// Package config reads helpshift settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/helpshift/internal/calendar"
)

// DefaultPageSize is the number of dates shown per table page.
const DefaultPageSize = 15

// Config holds all runtime settings.
type Config struct {
	DBPath       string
	RegistryPath string

	HolidaysPath  string
	HolidaysURL   string
	FetchHolidays bool

	FontPath     string
	BoldFontPath string

	PageSize int

	LogUseCases bool
	LogLevel    slog.Level
}

// Default returns a Config with defaults; DBPath is left empty until Load
// resolves the home directory.
func Default() Config {
	return Config{
		HolidaysURL: calendar.DefaultHolidaysURL,
		PageSize:    DefaultPageSize,
		LogLevel:    slog.LevelInfo,
	}
}

// Load reads HELPSHIFT_* environment variables, falling back to defaults for
// unset values.
func Load() (Config, error) {
	cfg := Default()

	cfg.DBPath = os.Getenv("HELPSHIFT_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".helpshift", "helpshift.db")
	}

	cfg.RegistryPath = os.Getenv("HELPSHIFT_REGISTRY")
	cfg.HolidaysPath = os.Getenv("HELPSHIFT_HOLIDAYS")
	if v := os.Getenv("HELPSHIFT_HOLIDAYS_URL"); v != "" {
		cfg.HolidaysURL = v
	}
	if v := os.Getenv("HELPSHIFT_HOLIDAYS_FETCH"); v != "" {
		cfg.FetchHolidays, _ = strconv.ParseBool(v)
	}

	cfg.FontPath = os.Getenv("HELPSHIFT_FONT")
	cfg.BoldFontPath = os.Getenv("HELPSHIFT_FONT_BOLD")

	if v := os.Getenv("HELPSHIFT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("HELPSHIFT_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HELPSHIFT_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("HELPSHIFT_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}
