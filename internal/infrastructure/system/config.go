// Package system provides infrastructure for system-level configuration.
// This includes resolving the launcher directories and loading the optional
// <config-dir>/config.yaml file.
package system

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// ConfigFileName is the name of the optional config file inside ConfigDir.
const ConfigFileName = "config.yaml"

// Config represents the launcher configuration file.
// This is infrastructure-level configuration separate from stored profiles.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// StorageConfig configures where profiles are persisted.
type StorageConfig struct {
	// Dir overrides ConfigDir() as the root of the profile database.
	Dir string `mapstructure:"dir"`
}

// DefaultsConfig holds values used when a new profile leaves a field unset.
type DefaultsConfig struct {
	Variant  string `mapstructure:"variant"`
	Renderer string `mapstructure:"renderer"`
}

// DefaultConfig returns a Config with safe defaults for all fields.
// This is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Defaults: DefaultsConfig{
			Variant:  values.VariantPlayer.String(),
			Renderer: values.DefaultRenderBackend.String(),
		},
	}
}

// DefaultConfigPath returns <ConfigDir>/config.yaml, or "" when there is no config dir.
func DefaultConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct {
	v *viper.Viper
}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{v: viper.New()}
}

// Viper exposes the underlying instance so callers can bind command-line flags
// before Load.
func (l *ConfigLoader) Viper() *viper.Viper {
	return l.v
}

// Load loads the configuration from the specified path.
// If path is empty or the file does not exist, the defaults (plus any bound
// flags) are returned.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	def := DefaultConfig()
	l.v.SetDefault("log.level", def.Log.Level)
	l.v.SetDefault("storage.dir", def.Storage.Dir)
	l.v.SetDefault("defaults.variant", def.Defaults.Variant)
	l.v.SetDefault("defaults.renderer", def.Defaults.Renderer)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			l.v.SetConfigFile(path)
			l.v.SetConfigType("yaml")
			if err := l.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse system config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read system config: %w", err)
		}
	}

	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode system config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ConfigFileUsed returns the file read by the last Load, if any.
func (l *ConfigLoader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.DefaultVariant(); err != nil {
		return fmt.Errorf("defaults.variant: %w", err)
	}
	if _, err := c.DefaultRenderer(); err != nil {
		return fmt.Errorf("defaults.renderer: %w", err)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultVariant returns the configured variant for new profiles.
func (c *Config) DefaultVariant() (values.ApplicationVariant, error) {
	return values.ParseApplicationVariant(c.Defaults.Variant)
}

// DefaultRenderer returns the configured render backend for new profiles.
func (c *Config) DefaultRenderer() (values.RenderBackend, error) {
	return values.ParseRenderBackend(c.Defaults.Renderer)
}

// StorageRoot returns the directory the profile database lives under.
func (c *Config) StorageRoot() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return ConfigDir()
}

// ParseLogLevel maps a level name onto slog. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}
