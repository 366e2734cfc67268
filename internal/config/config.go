// Package config assembles the API server's settings.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// CONFIG_FILE, then individual environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"nc-news/internal/common/pagination"
	envcfg "nc-news/pkg/config"
)

type Config struct {
	Version   string `yaml:"version"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	DB         DBConfig          `yaml:"database"`
	HTTP       HTTPConfig        `yaml:"http"`
	RateLimit  RateLimitConfig   `yaml:"rate_limit"`
	Pagination pagination.Config `yaml:"pagination"`
}

type DBConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	BreakerEnabled  bool          `yaml:"breaker_enabled"`
	StatsInterval   time.Duration `yaml:"stats_interval"`
}

type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// RateLimitConfig configures the per-client limiter. RPS 0 disables it.
type RateLimitConfig struct {
	RPS             float64       `yaml:"rps"`
	Burst           int           `yaml:"burst"`
	ClientTTL       time.Duration `yaml:"client_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	TrustedProxies  []string      `yaml:"trusted_proxies"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:   "dev",
		LogLevel:  "info",
		LogFormat: "json",
		DB: DBConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			BreakerEnabled:  true,
			StatsInterval:   15 * time.Second,
		},
		HTTP: HTTPConfig{
			Addr:              ":8080",
			RequestTimeout:    10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		RateLimit: RateLimitConfig{
			Burst:           20,
			ClientTTL:       10 * time.Minute,
			CleanupInterval: time.Minute,
		},
		Pagination: pagination.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, CONFIG_FILE and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFile overlays the YAML document at path. Unknown keys are rejected.
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides each field whose environment variable is set.
func (c *Config) applyEnv() {
	c.Version = envcfg.GetEnvString("VERSION", c.Version)
	c.LogLevel = envcfg.GetEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envcfg.GetEnvString("LOG_FORMAT", c.LogFormat)

	c.DB.URL = envcfg.GetEnvString("DATABASE_URL", c.DB.URL)
	c.DB.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", c.DB.MaxOpenConns)
	c.DB.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", c.DB.MaxIdleConns)
	c.DB.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.DB.ConnMaxLifetime)
	c.DB.ConnMaxIdleTime = envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.DB.ConnMaxIdleTime)
	c.DB.BreakerEnabled = envcfg.GetEnvBool("DB_BREAKER_ENABLED", c.DB.BreakerEnabled)
	c.DB.StatsInterval = envcfg.GetEnvDuration("DB_STATS_INTERVAL", c.DB.StatsInterval)

	c.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.RequestTimeout = envcfg.GetEnvDuration("HTTP_REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.MaxBodyBytes = envcfg.GetEnvInt64("HTTP_MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)

	c.RateLimit.RPS = envcfg.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envcfg.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.ClientTTL = envcfg.GetEnvDuration("RATE_LIMIT_CLIENT_TTL", c.RateLimit.ClientTTL)
	c.RateLimit.TrustedProxies = envcfg.GetEnvStringList("TRUSTED_PROXIES", c.RateLimit.TrustedProxies)

	c.Pagination.DefaultLimit = envcfg.GetEnvInt("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit)
	c.Pagination.MaxLimit = envcfg.GetEnvInt("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit)
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if strings.TrimSpace(c.DB.URL) == "" {
		errs = append(errs, errors.New("database url is required (DATABASE_URL)"))
	}
	add("database.max_open_conns", envcfg.ValidateIntRange(c.DB.MaxOpenConns, 1, 1000))
	add("database.max_idle_conns", envcfg.ValidateIntRange(c.DB.MaxIdleConns, 0, c.DB.MaxOpenConns))
	add("database.conn_max_lifetime", envcfg.ValidateNonNegativeDuration(c.DB.ConnMaxLifetime))
	add("database.conn_max_idle_time", envcfg.ValidateNonNegativeDuration(c.DB.ConnMaxIdleTime))
	add("database.stats_interval", envcfg.ValidatePositiveDuration(c.DB.StatsInterval))

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	add("http.request_timeout", envcfg.ValidateNonNegativeDuration(c.HTTP.RequestTimeout))
	add("http.read_header_timeout", envcfg.ValidatePositiveDuration(c.HTTP.ReadHeaderTimeout))
	add("http.shutdown_timeout", envcfg.ValidatePositiveDuration(c.HTTP.ShutdownTimeout))
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("http.max_body_bytes must be positive, got %d", c.HTTP.MaxBodyBytes))
	}

	if c.RateLimit.RPS < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.rps must be non-negative, got %v", c.RateLimit.RPS))
	}
	if c.RateLimit.RPS > 0 {
		add("rate_limit.burst", envcfg.ValidateIntRange(c.RateLimit.Burst, 1, 100000))
		add("rate_limit.client_ttl", envcfg.ValidatePositiveDuration(c.RateLimit.ClientTTL))
		add("rate_limit.cleanup_interval", envcfg.ValidatePositiveDuration(c.RateLimit.CleanupInterval))
	}

	add("pagination.max_limit", envcfg.ValidateIntRange(c.Pagination.MaxLimit, 1, 10000))
	add("pagination.default_limit", envcfg.ValidateIntRange(c.Pagination.DefaultLimit, 1, c.Pagination.MaxLimit))
	add("pagination.default_page", envcfg.ValidateIntRange(c.Pagination.DefaultPage, 1, 1<<30))

	return errors.Join(errs...)
}
