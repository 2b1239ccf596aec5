package core

import (
	"context"
	"time"
)

// Storage keys used by the stores. Each maps to one persisted record.
const (
	KeyUser       = "user_data"
	KeyNotes      = "notes"
	KeyCredential = "openai_api_key"
)

// Storage defines the contract for the local key-value mirror.
// Adhering to this interface keeps the stores independent of the
// underlying backend (filesystem, embedded KV store, memory).
//
// Storage is a passive mirror, not a source of truth during a running
// session: each store reads its key once when it opens and writes it
// back after every mutation.
type Storage interface {
	// Get retrieves the value for a key. Returns ErrKeyNotFound when
	// the key has no value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a value under a key, overwriting any previous value.
	// The write must be complete before Put returns.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// EventType represents the type of change observed in the storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an observed change to a storage key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp time.Time
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}
