// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/i18n"
	"github.com/KirkDiggler/coc-api/internal/redis"
)

// Redis topologies
const (
	RedisModeSingle   = "single"
	RedisModeCluster  = "cluster"
	RedisModeSentinel = "sentinel"
)

// Config is the full server configuration
type Config struct {
	GRPCPort int `env:"COC_GRPC_PORT" envDefault:"50051"`

	RedisMode       string   `env:"COC_REDIS_MODE" envDefault:"single"`
	RedisAddrs      []string `env:"COC_REDIS_ADDR" envDefault:"localhost:6379" envSeparator:","`
	RedisMasterName string   `env:"COC_REDIS_MASTER_NAME"`
	RedisPoolSize   int      `env:"COC_REDIS_POOL_SIZE" envDefault:"10"`
	RedisTLS        bool     `env:"COC_REDIS_TLS"`

	LogLevel  string `env:"COC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"COC_LOG_FORMAT" envDefault:"json"`

	RollLogTTL     time.Duration `env:"COC_ROLL_LOG_TTL" envDefault:"24h"`
	ShareCacheSize int           `env:"COC_SHARE_CACHE_SIZE" envDefault:"256"`
	DefaultLocale  string        `env:"COC_DEFAULT_LOCALE" envDefault:"en"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment when vars
// is not nil
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings for consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("RedisMode", c.RedisMode,
		[]string{RedisModeSingle, RedisModeCluster, RedisModeSentinel}, vb)
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("RedisAddrs")
	}
	if c.RedisMode == RedisModeSentinel && c.RedisMasterName == "" {
		vb.RequiredField("RedisMasterName")
	}
	if c.RedisPoolSize < 0 {
		vb.InvalidField("RedisPoolSize", "must not be negative")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be one of debug, info, warn, error")
	}
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{"json", "text"}, vb)
	if c.RollLogTTL <= 0 {
		vb.InvalidField("RollLogTTL", "must be positive")
	}
	if c.ShareCacheSize < 0 {
		vb.InvalidField("ShareCacheSize", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// Locale returns the configured fallback display locale
func (c *Config) Locale() i18n.Locale {
	return i18n.Match(c.DefaultLocale)
}

// RedisClient builds the client for the configured topology
func (c *Config) RedisClient() (redis.Client, error) {
	opts := &redis.Options{
		PoolSize: c.RedisPoolSize,
		UseTLS:   c.RedisTLS,
	}

	switch c.RedisMode {
	case RedisModeCluster:
		return redis.NewClusterClient(c.RedisAddrs, opts)
	case RedisModeSentinel:
		return redis.NewFailoverClient(c.RedisMasterName, c.RedisAddrs, opts)
	default:
		if len(c.RedisAddrs) == 0 {
			return nil, errors.InvalidArgument("redis address is required")
		}
		return redis.NewClient(c.RedisAddrs[0], opts)
	}
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
