//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/db/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "nyayasetu_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/nyayasetu_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	// The port opens before postgres accepts connections.
	var err error
	for i := 0; i < 10; i++ {
		var pool *pgxpool.Pool
		if pool, err = postgres.Connect(ctx, dsn); err == nil {
			t.Cleanup(pool.Close)
			return pool
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("connect: %v", err)
	return nil
}

func TestSessionSlot_Postgres(t *testing.T) {
	ctx := context.Background()
	pool := connect(t)

	slot := postgres.NewSessionSlot(pool, "nyayasetu_user")
	_, err := slot.Load(ctx)
	require.ErrorIs(t, err, ports.ErrSlotEmpty)

	require.NoError(t, slot.Save(ctx, []byte(`{"id":"citizen-1"}`)))
	require.NoError(t, slot.Save(ctx, []byte(`{"id":"lawyer-1"}`)))
	got, err := slot.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, `{"id":"lawyer-1"}`, string(got))

	other := postgres.NewSessionSlot(pool, "other_portal")
	_, err = other.Load(ctx)
	require.ErrorIs(t, err, ports.ErrSlotEmpty)

	require.NoError(t, slot.Clear(ctx))
	require.NoError(t, slot.Clear(ctx))
	_, err = slot.Load(ctx)
	require.ErrorIs(t, err, ports.ErrSlotEmpty)
}
