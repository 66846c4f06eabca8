package config

import (
	"fmt"
	"os"
	"time"

	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Watch   WatchConfig   `yaml:"watch"`
}

// StoreConfig selects the fixture family used by the store command.
type StoreConfig struct {
	Season string `yaml:"season"`
}

// OutputConfig controls how composed posts are written.
type OutputConfig struct {
	Format      Format `yaml:"format"`
	Frontmatter bool   `yaml:"frontmatter"`
	Path        string `yaml:"path,omitempty"` // empty means stdout
}

// MetricsConfig controls the Prometheus endpoint served in watch mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address,omitempty"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// Load loads configuration from the specified file, applies defaults and validates it.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, foundation.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, foundation.WrapError(err, foundation.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when it exists and otherwise returns defaults.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg, nil
	}
	return Load(configPath)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, foundation.WrapError(err, foundation.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return foundation.NewError(foundation.CategoryValidation, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Store:   StoreConfig{Season: "christmas"},
		Output:  OutputConfig{Format: FormatMarkdown, Frontmatter: true},
		Metrics: MetricsConfig{Enabled: false, Address: defaultMetricsAddress},
		Watch:   WatchConfig{Debounce: defaultDebounce},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return foundation.WrapError(err, foundation.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return foundation.WrapError(err, foundation.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
