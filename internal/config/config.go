// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Search    SearchConfig    `koanf:"search"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the song dataset
type CatalogConfig struct {
	Path   string `koanf:"path"`
	Loader string `koanf:"loader"` // csv or duckdb
}

// RecommendConfig holds ranking bounds and the age adjustment cap
type RecommendConfig struct {
	MinAge           int           `koanf:"min_age"`
	MaxAge           int           `koanf:"max_age"`
	MinCount         int           `koanf:"min_count"`
	MaxCount         int           `koanf:"max_count"`
	DefaultCount     int           `koanf:"default_count"`
	MaxAgeAdjustment float64       `koanf:"max_age_adjustment"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
}

// SearchConfig bounds search result sizes
type SearchConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// RecommendEngineConfig converts the recommend section into engine configuration.
func (c *Config) RecommendEngineConfig() *recommend.Config {
	return &recommend.Config{
		Age:              recommend.RangeConfig{Min: c.Recommend.MinAge, Max: c.Recommend.MaxAge},
		Count:            recommend.CountConfig{Min: c.Recommend.MinCount, Max: c.Recommend.MaxCount, Default: c.Recommend.DefaultCount},
		MaxAgeAdjustment: c.Recommend.MaxAgeAdjustment,
	}
}

// LoggerConfig converts the logging section for logging.Init.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// IsProduction reports whether Environment is "production".
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
