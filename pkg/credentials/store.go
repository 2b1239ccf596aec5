// Package credentials holds the single API key used to authenticate to
// the enhancement provider.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/inkwell/pkg/core"
)

// Store persists exactly one credential string.
type Store struct {
	storage core.Storage
	logger  *slog.Logger
}

// NewStore creates a credential store over the given storage.
func NewStore(storage core.Storage, logger *slog.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Save stores the trimmed key, overwriting any existing credential.
// A blank or whitespace-only key is rejected with core.ErrEmptyCredential
// and leaves any stored credential untouched.
func (s *Store) Save(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return core.ErrEmptyCredential
	}

	if err := s.storage.Put(ctx, core.KeyCredential, []byte(key)); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("credential saved")
	}
	return nil
}

// Get returns the stored credential, or false if none is stored.
func (s *Store) Get(ctx context.Context) (string, bool) {
	data, err := s.storage.Get(ctx, core.KeyCredential)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", false
	}
	return key, true
}

// Has reports whether a non-empty credential is stored.
func (s *Store) Has(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

// Clear removes the stored credential unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, core.KeyCredential); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("credential cleared")
	}
	return nil
}
