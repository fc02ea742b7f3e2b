// Package storage keeps the session record in a file on local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// FileSlot stores the session record as a single file. Writes go through a
// temp file and rename so a crash never leaves a half-written record.
type FileSlot struct {
	path string
	mu   sync.Mutex
}

// NewFileSlot returns a slot for <dir>/<key>.json, creating dir if needed.
func NewFileSlot(dir, key string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileSlot{path: filepath.Join(dir, key+".json")}, nil
}

func (s *FileSlot) Path() string { return s.path }

func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ports.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(b) == 0 {
		return nil, ports.ErrSlotEmpty
	}
	return b, nil
}

func (s *FileSlot) Save(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileSlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Ping reports whether the slot directory is still writable.
func (s *FileSlot) Ping(_ context.Context) error {
	f, err := os.CreateTemp(filepath.Dir(s.path), ".ping-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
