// Package session fabricates and persists the local identity.
//
// There is no credential verification: login and register both mint a
// fresh user, and login never consults prior registrations. This is
// intentional demo behavior inherited from the product's design, not a
// bug to fix here.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/inkwell/pkg/core"
)

// Store holds the current session user, mirrored to storage.
type Store struct {
	mu      sync.RWMutex
	user    *core.User
	storage core.Storage
	logger  *slog.Logger
}

// Open creates a session store and restores any persisted user.
// Unparseable persisted data is discarded and removed, never fatal.
func Open(ctx context.Context, storage core.Storage, logger *slog.Logger) (*Store, error) {
	s := &Store{storage: storage, logger: logger}

	data, err := storage.Get(ctx, core.KeyUser)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var user core.User
	if err := json.Unmarshal(data, &user); err != nil {
		if logger != nil {
			logger.Warn("discarding unparseable session data", "error", err)
		}
		if err := storage.Delete(ctx, core.KeyUser); err != nil && logger != nil {
			logger.Warn("failed to remove stale session data", "error", err)
		}
		return s, nil
	}

	s.user = &user
	return s, nil
}

// Register fabricates a new user, persists it, and makes it the current
// session user, overwriting any prior session. All fields are required.
func (s *Store) Register(ctx context.Context, email, username, password string) (core.User, error) {
	if isBlank(email) || isBlank(username) || isBlank(password) {
		return core.User{}, fmt.Errorf("register: %w", core.ErrEmptyField)
	}

	user := core.User{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
	}
	if err := s.setCurrent(ctx, user); err != nil {
		return core.User{}, err
	}

	if s.logger != nil {
		s.logger.Info("registered user", "username", user.Username)
	}
	return user, nil
}

// Login fabricates a user whose username is the email's local part and
// makes it the current session, discarding any previous one. The
// password is required but never checked against anything.
func (s *Store) Login(ctx context.Context, email, password string) (core.User, error) {
	if isBlank(email) || isBlank(password) {
		return core.User{}, fmt.Errorf("login: %w", core.ErrEmptyField)
	}

	username, _, _ := strings.Cut(email, "@")
	user := core.User{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
	}
	if err := s.setCurrent(ctx, user); err != nil {
		return core.User{}, err
	}

	if s.logger != nil {
		s.logger.Info("logged in", "username", user.Username)
	}
	return user, nil
}

// Logout clears the current session user and its persisted copy.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, core.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.user = nil

	if s.logger != nil {
		s.logger.Info("logged out")
	}
	return nil
}

// Current returns the session user, if any.
func (s *Store) Current() (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return core.User{}, false
	}
	return *s.user, true
}

func (s *Store) setCurrent(ctx context.Context, user core.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Put(ctx, core.KeyUser, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.user = &user
	return nil
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
