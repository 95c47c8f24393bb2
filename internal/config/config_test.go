package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/coc-api/internal/config"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/i18n"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, config.RedisModeSingle, cfg.RedisMode)
	assert.Equal(t, []string{"localhost:6379"}, cfg.RedisAddrs)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 24*time.Hour, cfg.RollLogTTL)
	assert.Equal(t, 256, cfg.ShareCacheSize)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, i18n.English, cfg.Locale())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"COC_GRPC_PORT":         "9090",
		"COC_REDIS_MODE":        "sentinel",
		"COC_REDIS_ADDR":        "s1:26379,s2:26379",
		"COC_REDIS_MASTER_NAME": "mymaster",
		"COC_LOG_LEVEL":         "DEBUG",
		"COC_LOG_FORMAT":        "text",
		"COC_ROLL_LOG_TTL":      "90m",
		"COC_DEFAULT_LOCALE":    "es-MX",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, cfg.RedisAddrs)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 90*time.Minute, cfg.RollLogTTL)
	assert.Equal(t, i18n.Spanish, cfg.Locale())

	client, err := cfg.RedisClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name string
		vars map[string]string
	}{
		{"port out of range", map[string]string{"COC_GRPC_PORT": "70000"}},
		{"unknown redis mode", map[string]string{"COC_REDIS_MODE": "mesh"}},
		{"sentinel without master", map[string]string{"COC_REDIS_MODE": "sentinel"}},
		{"unknown log level", map[string]string{"COC_LOG_LEVEL": "loud"}},
		{"unknown log format", map[string]string{"COC_LOG_FORMAT": "xml"}},
		{"zero ttl", map[string]string{"COC_ROLL_LOG_TTL": "0s"}},
		{"negative cache", map[string]string{"COC_SHARE_CACHE_SIZE": "-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(tc.vars)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLoadRejectsUnparseable(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"COC_GRPC_PORT": "not-a-number"})
	assert.Error(t, err)
}
