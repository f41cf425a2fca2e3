// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or
// environment variables.
type Config struct {
	DataDir            string `mapstructure:"DATA_DIR"`
	DBPath             string `mapstructure:"DB_PATH"`
	DBSchemaMode       string `mapstructure:"DB_SCHEMA_MODE"`
	SessionPath        string `mapstructure:"SESSION_PATH"`
	SessionRedisURL    string `mapstructure:"SESSION_REDIS_URL"`
	FeedRefreshSeconds int    `mapstructure:"FEED_REFRESH_SECONDS"`
	Env                string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from an optional config.yml and
// environment variables. Environment variables win.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults are enough.
	_ = viper.ReadInConfig()

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DB_PATH", "")
	viper.SetDefault("DB_SCHEMA_MODE", "hybrid")
	viper.SetDefault("SESSION_PATH", "")
	viper.SetDefault("SESSION_REDIS_URL", "")
	viper.SetDefault("FEED_REFRESH_SECONDS", 5)
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.applyDerivedDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDerivedDefaults fills paths that default relative to DATA_DIR.
func (c *Config) applyDerivedDefaults() {
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "ripple.db")
	}
	if c.SessionPath == "" {
		c.SessionPath = filepath.Join(c.DataDir, "session.json")
	}
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("DATA_DIR is required")
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH is required")
	}
	if c.FeedRefreshSeconds <= 0 {
		return errors.New("FEED_REFRESH_SECONDS must be positive")
	}
	return nil
}
