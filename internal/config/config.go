// Package config resolves forge's environment- and flag-driven
// settings: debug tracing and the two streams.Mode knobs
// (internal/streams) that control color/Unicode output. Grounded on
// the teacher's internal/config.LoadConfig, which reads MORFX_*
// environment variables with defaults; forge additionally loads a
// .env file first via github.com/joho/godotenv, so exported
// variables and a local .env behave the same way.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"

	"github.com/sophiekatz/forge-go/internal/streams"
)

// Config holds forge's resolved runtime settings.
type Config struct {
	Debug       bool
	ColorMode   streams.Mode
	UnicodeMode streams.Mode
}

var loadDotenvOnce sync.Once

// loadDotenv loads a .env file in the working directory if present.
// godotenv.Load returns an error when no .env file exists, which is
// the overwhelmingly common case and not a failure worth surfacing.
func loadDotenv() {
	loadDotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// FromEnvironment builds a Config from FORGE_DEBUG, FORGE_COLOR_MODE,
// and FORGE_UNICODE_MODE, loading a .env file first, mirroring the
// teacher's env-first config resolution in LoadConfig.
func FromEnvironment() (*Config, error) {
	loadDotenv()

	cfg := &Config{}

	if debugStr := os.Getenv("FORGE_DEBUG"); debugStr != "" {
		debug, err := strconv.ParseBool(debugStr)
		if err != nil {
			return nil, fmt.Errorf("config: invalid FORGE_DEBUG value %q: %w", debugStr, err)
		}
		cfg.Debug = debug
	}

	colorMode, err := streams.ParseMode(os.Getenv("FORGE_COLOR_MODE"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid FORGE_COLOR_MODE: %w", err)
	}
	cfg.ColorMode = colorMode

	unicodeMode, err := streams.ParseMode(os.Getenv("FORGE_UNICODE_MODE"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid FORGE_UNICODE_MODE: %w", err)
	}
	cfg.UnicodeMode = unicodeMode

	return cfg, nil
}

// OverrideFrom merges CLI-flag-derived values over cfg, with flags
// taking priority over whatever the environment already set — mirrors
// the teacher's layering of explicit flags over defaults in
// validateFlags.
func (cfg *Config) OverrideFrom(flags *Flags) {
	if flags.DebugSet {
		cfg.Debug = flags.Debug
	}
	if flags.ColorModeSet {
		cfg.ColorMode = flags.ColorMode
	}
	if flags.UnicodeModeSet {
		cfg.UnicodeMode = flags.UnicodeMode
	}
}
