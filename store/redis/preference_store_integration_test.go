//go:build integration

package redis

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping integration test on Windows - rootless Docker is not supported")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestPreferenceStoreIntegration(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	s := NewPreferenceStore(client)
	key := types.PreferencesStorageKey

	_, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, key, []byte(`{"unit":"mi"}`)))
	raw, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"unit":"mi"}`, string(raw))

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), int64(ttl))

	require.NoError(t, s.Delete(ctx, key))
	_, found, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.Ping(ctx))
}
