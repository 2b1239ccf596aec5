package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/inkwell/pkg/core"
)

// Storage implements core.Storage using one file per key inside a
// directory. Writes are atomic (temp file + rename), so a reader never
// observes a partially written value; the last completed write wins.
type Storage struct {
	Path   string
	config Config
}

// Config holds the configuration for the filesystem storage.
type Config struct {
	Path      string
	AutoInit  bool // create the directory if missing
	MustExist bool // fail if the directory is missing
	Logger    *slog.Logger
}

// NewStorage creates a new filesystem-backed storage.
func NewStorage(config Config) *Storage {
	return &Storage{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the storage directory is ready.
func (s *Storage) Initialize(ctx context.Context) error {
	if !s.config.MustExist && s.config.AutoInit {
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
		return nil
	}

	info, err := os.Stat(s.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("storage path does not exist: %s", s.Path)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path is not a directory: %s", s.Path)
	}
	return nil
}

// Get retrieves the raw value for a key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put stores a value under a key. The file is written atomically.
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("writing storage key", "key", key, "bytes", len(value))
	}

	if err := writeFileAtomic(path, value, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Storage) Delete(ctx context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// keyPath maps a key to its file path, rejecting keys that would
// escape the storage directory.
func (s *Storage) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.Path, key+".json"), nil
}

var _ core.Storage = (*Storage)(nil)
