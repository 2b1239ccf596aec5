package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyField is returned when a required field is blank.
	ErrEmptyField = errors.New("required field is empty")
	// ErrEmptyCredential is returned when saving a blank API key.
	ErrEmptyCredential = errors.New("credential is empty")
	// ErrMissingCredential is returned when an enhancement is attempted
	// with no API key supplied or stored.
	ErrMissingCredential = errors.New("no API key supplied or stored")
	// ErrNoteNotFound is returned for operations on an unknown note ID.
	ErrNoteNotFound = errors.New("note not found")
	// ErrAlreadyEnhanced is returned when enhancing a note a second time.
	ErrAlreadyEnhanced = errors.New("note already enhanced")
	// ErrEnhanceInFlight is returned while an enhancement for the same
	// note is still pending.
	ErrEnhanceInFlight = errors.New("enhancement already in progress for note")
	// ErrKeyNotFound is returned by Storage when a key has no value.
	ErrKeyNotFound = errors.New("key not found")
)

// EnhancementError reports a failed provider call: a non-2xx response,
// a transport failure, or a malformed response body.
type EnhancementError struct {
	StatusCode int    // 0 when the request never completed
	Message    string // provider message when available, else generic
	Err        error  // underlying cause, may be nil
}

func (e *EnhancementError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("enhancement failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("enhancement failed: %s", e.Message)
}

func (e *EnhancementError) Unwrap() error {
	return e.Err
}
