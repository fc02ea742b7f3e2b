package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

func TestFileSlot_Lifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	slot, err := NewFileSlot(filepath.Join(dir, "nested"), "nyayasetu_user")
	require.NoError(t, err)

	_, err = slot.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrSlotEmpty)

	require.NoError(t, slot.Save(ctx, []byte(`{"id":"citizen-1"}`)))
	got, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"citizen-1"}`, string(got))

	require.NoError(t, slot.Save(ctx, []byte(`{"id":"lawyer-1"}`)))
	got, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"lawyer-1"}`, string(got))

	require.NoError(t, slot.Clear(ctx))
	require.NoError(t, slot.Clear(ctx))
	_, err = slot.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrSlotEmpty)
}

func TestFileSlot_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir, "k")
	require.NoError(t, err)

	require.NoError(t, slot.Save(context.Background(), []byte("x")))
	require.NoError(t, slot.Ping(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestFileSlot_EmptyFileIsEmptySlot(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir, "k")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(slot.Path(), nil, 0o600))

	_, err = slot.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrSlotEmpty)
}
