// Package testutils provides shared helpers for repository and orchestrator tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/coc-api/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for it
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestRedisServer(t)
	return client, mr.Close
}

// CreateTestRedisServer is CreateTestRedisClient for tests that need to drive the
// server directly, for example to fast forward TTLs or inject raw keys
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
