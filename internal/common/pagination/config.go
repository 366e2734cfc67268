// Package pagination parses and validates the limit/p query parameters
// shared by the article and comment listings.
package pagination

import (
	"nc-news/pkg/config"
)

// Config holds pagination bounds.
type Config struct {
	DefaultPage  int `yaml:"default_page"`  // Page used when only limit is supplied
	DefaultLimit int `yaml:"default_limit"` // Limit used when only p is supplied
	MaxLimit     int `yaml:"max_limit"`     // Largest accepted limit
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination configuration from environment variables,
// falling back to DefaultConfig values for unset or invalid entries.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  def.DefaultPage,
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}
