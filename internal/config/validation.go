package config

import (
	"slices"

	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"git.home.luguber.info/inful/patterns/internal/storefactory"
)

// Validate checks a configuration after defaults have been applied.
func Validate(cfg *Config) error {
	if !slices.Contains(storefactory.Seasons(), cfg.Store.Season) {
		return foundation.ConfigError("unsupported store season").
			WithContext("season", cfg.Store.Season).
			WithContext("supported", storefactory.Seasons()).
			Build()
	}
	if NormalizeFormat(string(cfg.Output.Format)) == "" {
		return foundation.ConfigError("unsupported output format").
			WithContext("format", string(cfg.Output.Format)).
			Build()
	}
	return nil
}
