// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults(filepath.Dir(configPath))

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment overrides, e.g. HUEWHEEL_PALETTE_DEFAULT_SCHEME
	v.SetEnvPrefix("huewheel")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// DefaultPath returns the config path used when HUEWHEEL_CONFIG is unset
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".huewheel", "config.yaml"), nil
}

// setDefaults sets default configuration values
func setDefaults(dataDir string) {
	// Palette defaults
	v.SetDefault("palette.default_color", "steelblue")
	v.SetDefault("palette.default_scheme", "basic")

	// Output defaults
	v.SetDefault("output.format", "sass")

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.rate_interval", "1m")
	v.SetDefault("server.hsts", false)
	v.SetDefault("server.behind_proxy", false)
	v.SetDefault("server.blocked_ips", []string{})

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dataDir, "library.db"))

	// Backup defaults
	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.path", filepath.Join(dataDir, "backups"))
	v.SetDefault("backup.interval", "24h")
	v.SetDefault("backup.keep", 10)

	// Logging defaults
	v.SetDefault("log.level", "info")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
