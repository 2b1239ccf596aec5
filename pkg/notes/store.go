// Package notes implements the note store: an ordered in-memory
// collection mirrored to storage on every mutation.
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/inkwell/pkg/core"
)

// Store owns the note collection. The collection is newest-created-first
// and is written back to storage in full after every mutation; the last
// completed write wins. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	notes    []core.Note
	inflight map[string]struct{}
	storage  core.Storage
	enhancer core.Enhancer
	logger   *slog.Logger
}

// Open creates a note store and loads the persisted collection.
// Unparseable persisted data is discarded and the store starts empty,
// never fatal. The enhancer may be nil if Enhance is never called.
func Open(ctx context.Context, storage core.Storage, enhancer core.Enhancer, logger *slog.Logger) (*Store, error) {
	s := &Store{
		inflight: make(map[string]struct{}),
		storage:  storage,
		enhancer: enhancer,
		logger:   logger,
	}

	data, err := storage.Get(ctx, core.KeyNotes)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	if err := json.Unmarshal(data, &s.notes); err != nil {
		if logger != nil {
			logger.Warn("discarding unparseable note data", "error", err)
		}
		s.notes = nil
	}
	return s, nil
}

// List returns all notes, newest-created-first.
func (s *Store) List() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get retrieves a note by ID. Pure lookup, no side effect.
func (s *Store) Get(id string) (core.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return core.Note{}, false
}

// Create produces a new note, prepends it to the collection, and
// persists. Title and content are required.
func (s *Store) Create(ctx context.Context, title, content string) (core.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return core.Note{}, fmt.Errorf("create note: %w", core.ErrEmptyField)
	}

	now := time.Now()
	note := core.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]core.Note{note}, s.notes...)
	if err := s.persistLocked(ctx); err != nil {
		s.notes = s.notes[1:]
		return core.Note{}, err
	}

	if s.logger != nil {
		s.logger.Info("note created", "id", note.ID, "title", note.Title)
	}
	return note, nil
}

// Delete removes the note with the given ID if present and persists.
// Deleting an unknown ID is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	removed := s.notes[idx]
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if err := s.persistLocked(ctx); err != nil {
		s.notes = append(s.notes[:idx], append([]core.Note{removed}, s.notes[idx:]...)...)
		return err
	}

	if s.logger != nil {
		s.logger.Info("note deleted", "id", id)
	}
	return nil
}

// Enhance rewrites a note's content through the enhancer and persists
// the result. A note is enhanced at most once: a second call fails with
// core.ErrAlreadyEnhanced. While a call for an ID is pending, further
// calls for the same ID fail with core.ErrEnhanceInFlight. On any
// failure the note is left unmodified; each call is independent, so the
// caller may retry.
func (s *Store) Enhance(ctx context.Context, id string) error {
	if s.enhancer == nil {
		return fmt.Errorf("enhance note: no enhancer configured")
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("enhance note %s: %w", id, core.ErrNoteNotFound)
	}
	if s.notes[idx].AIEnhanced {
		s.mu.Unlock()
		return fmt.Errorf("enhance note %s: %w", id, core.ErrAlreadyEnhanced)
	}
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return fmt.Errorf("enhance note %s: %w", id, core.ErrEnhanceInFlight)
	}
	s.inflight[id] = struct{}{}
	content := s.notes[idx].Content
	s.mu.Unlock()

	// The provider call runs outside the lock so other operations
	// proceed while it is pending.
	enhanced, err := s.enhancer.Enhance(ctx, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)

	if err != nil {
		return fmt.Errorf("enhance note %s: %w", id, err)
	}

	// The note may have been deleted while the call was pending.
	idx = s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("enhance note %s: %w", id, core.ErrNoteNotFound)
	}

	prev := s.notes[idx]
	s.notes[idx].Content = enhanced
	s.notes[idx].UpdatedAt = time.Now()
	s.notes[idx].AIEnhanced = true
	if err := s.persistLocked(ctx); err != nil {
		s.notes[idx] = prev
		return err
	}

	if s.logger != nil {
		s.logger.Info("note enhanced", "id", id)
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}
	if err := s.storage.Put(ctx, core.KeyNotes, data); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}
