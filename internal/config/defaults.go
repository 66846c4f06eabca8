package config

import (
	"os"
	"time"
)

const (
	defaultSeason         = "default"
	defaultMetricsAddress = ":9090"
	defaultDebounce       = 250 * time.Millisecond

	// EnvSeason overrides store.season when set.
	EnvSeason = "PATTERNS_SEASON"
)

func applyDefaults(cfg *Config) {
	if season := os.Getenv(EnvSeason); season != "" {
		cfg.Store.Season = season
	}
	if cfg.Store.Season == "" {
		cfg.Store.Season = defaultSeason
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatMarkdown
	} else if f := NormalizeFormat(string(cfg.Output.Format)); f != "" {
		cfg.Output.Format = f
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Address == "" {
		cfg.Metrics.Address = defaultMetricsAddress
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = defaultDebounce
	}
}
