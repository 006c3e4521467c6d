// Package config loads dlx configuration from file, environment, and
// defaults. Precedence: explicit flags (handled by the CLI) > DLX_*
// environment variables > config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/dlxrun/dlx/internal/cache"
	"github.com/dlxrun/dlx/internal/runner"
)

// settingKeys lists every recognized configuration key.
var settingKeys = []string{"cache_dir", "ttl", "max_age", "log_level", "log_file"}

// Config holds resolved dlx settings.
type Config struct {
	// CacheDir is the cache root directory.
	CacheDir string `mapstructure:"cache_dir"`
	// TTL is the default validity window for cached binaries.
	TTL time.Duration `mapstructure:"ttl"`
	// MaxAge is the default staleness threshold for cleanup.
	MaxAge time.Duration `mapstructure:"max_age"`
	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string `mapstructure:"log_level"`
	// LogFile, when set, sends logs to a rotating file instead of stderr.
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration. cfgFile may be empty, in which case a .dlx.yaml
// in the home directory or the working directory is used when present. A
// missing config file is not an error; defaults and environment apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaultRoot, err := cache.DefaultRoot()
	if err != nil {
		return nil, err
	}

	v.SetDefault("cache_dir", defaultRoot)
	v.SetDefault("ttl", runner.DefaultTTL.String())
	v.SetDefault("max_age", cache.DefaultMaxAge.String())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".dlx")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DLX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only an explicitly named file is required to exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Collect through viper lookups so environment overrides apply, then
	// decode into the typed struct.
	settings := make(map[string]interface{}, len(settingKeys))
	for _, key := range settingKeys {
		settings[key] = v.GetString(key)
	}

	cfg, err := decode(settings)
	if err != nil {
		return nil, err
	}

	cfg.CacheDir = expandPath(cfg.CacheDir)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

// decode maps raw settings into Config, converting duration strings.
func decode(settings map[string]interface{}) (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &cfg,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("build config decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// expandPath resolves a leading ~ against the user home directory.
func expandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
