// Package config handles configuration loading for ticker-sniffer.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"  yaml:"engine"  json:"engine"`
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"  json:"server"`
	Feed    FeedConfig    `mapstructure:"feed"    yaml:"feed"    json:"feed"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// EngineConfig tunes the matching engine's reconciliation thresholds and
// picks which corpus it runs against.
type EngineConfig struct {
	ThresholdRatioExactMatches       float64 `mapstructure:"threshold_ratio_exact_matches"        yaml:"threshold_ratio_exact_matches"        json:"threshold_ratio_exact_matches"`
	ThresholdMinCompanyTokenCoverage float64 `mapstructure:"threshold_min_company_token_coverage" yaml:"threshold_min_company_token_coverage" json:"threshold_min_company_token_coverage"`
	CorpusPath                       string  `mapstructure:"corpus_path"                          yaml:"corpus_path"                          json:"corpus_path"` // empty uses the embedded default
}

// ServerConfig holds HTTP API server settings.
type ServerConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"         json:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"         json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
}

// FeedSourceConfig describes one RSS/Atom feed to poll for extraction.
type FeedSourceConfig struct {
	Name            string `mapstructure:"name"              yaml:"name"              json:"name"`
	URL             string `mapstructure:"url"               yaml:"url"               json:"url"`
	APIKeyEnv       string `mapstructure:"api_key_env"        yaml:"api_key_env"        json:"-"` // name of the env var holding an optional key, never the key itself
	RateLimitPerMin int    `mapstructure:"rate_limit_per_min" yaml:"rate_limit_per_min" json:"rate_limit_per_min"`
}

// FeedConfig holds news-feed polling settings.
type FeedConfig struct {
	Sources           []FeedSourceConfig `mapstructure:"sources"            yaml:"sources"            json:"sources"`
	CacheTTLSec       int                `mapstructure:"cache_ttl_sec"      yaml:"cache_ttl_sec"      json:"cache_ttl_sec"`
	ConcurrentFetches int                `mapstructure:"concurrent_fetches" yaml:"concurrent_fetches" json:"concurrent_fetches"`
	UserAgent         string             `mapstructure:"user_agent"         yaml:"user_agent"         json:"user_agent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.tickersniffer/config.yaml (home directory)
//  3. /etc/tickersniffer/config.yaml (system)
//
// Environment variables override config file values.
// Format: TICKERSNIFFER_<SECTION>_<KEY>, e.g., TICKERSNIFFER_SERVER_PORT
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".tickersniffer"))
	v.AddConfigPath("/etc/tickersniffer")

	v.SetEnvPrefix("TICKERSNIFFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("TICKERSNIFFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// WatchConfig reloads cfg in place whenever the backing file changes,
// invoking onChange (if non-nil) after each successful reload. A reload
// that fails to parse is swallowed and the previous valid configuration
// stays in effect — a stale config beats a partially-applied one.
func WatchConfig(path string, cfg *Config, onChange func()) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("TICKERSNIFFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		var next Config
		if err := v.Unmarshal(&next); err != nil {
			return
		}
		*cfg = next
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.threshold_ratio_exact_matches", 0.50)
	v.SetDefault("engine.threshold_min_company_token_coverage", 0.60)
	v.SetDefault("engine.corpus_path", "")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("feed.cache_ttl_sec", 300)
	v.SetDefault("feed.concurrent_fetches", 5)
	v.SetDefault("feed.user_agent", "ticker-sniffer/1.0")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// SaveToFile writes the current configuration to a YAML file.
// If path is empty, it writes to ./config/config.yaml.
func SaveToFile(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(".", "config", "config.yaml")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ConfigFilePath returns the path to the active config file (if any).
// Returns empty string if no config file was found.
func ConfigFilePath() string {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".tickersniffer"))
	v.AddConfigPath("/etc/tickersniffer")

	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
