//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

func startRedis(t *testing.T) Config {
	t.Helper()
	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)
	return Config{Addr: host + ":" + port.Port()}
}

func TestSessionSlot_Redis(t *testing.T) {
	ctx := context.Background()
	client, err := Connect(ctx, startRedis(t))
	require.NoError(t, err)
	defer client.Close()

	slot := NewSessionSlot(client, "nyayasetu_user")

	_, err = slot.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrSlotEmpty)

	require.NoError(t, slot.Save(ctx, []byte(`{"id":"admin-1"}`)))
	got, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"admin-1"}`, string(got))

	require.NoError(t, slot.Clear(ctx))
	require.NoError(t, slot.Clear(ctx))
	_, err = slot.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrSlotEmpty)
}

func TestSubmissionGuard_Redis(t *testing.T) {
	ctx := context.Background()
	client, err := Connect(ctx, startRedis(t))
	require.NoError(t, err)
	defer client.Close()

	g := NewSubmissionGuard(client, "nyayasetu_user", time.Minute)

	ok, err := g.TryAcquire(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.TryAcquire(ctx, "session")
	require.NoError(t, err)
	assert.False(t, ok, "second submission must be refused")

	require.NoError(t, g.Release(ctx, "session"))
	ok, err = g.TryAcquire(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)
}
