package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inkwell/pkg/core"
)

func collectEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "event channel closed early")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return core.Event{}
	}
}

func TestWatcherReportsKeyChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir, "*", nil).Start(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("[]"), 0600))

	e := collectEvent(t, events)
	assert.Equal(t, "notes", e.Key)
	assert.Equal(t, core.EventCreate, e.Type)
	assert.False(t, e.Timestamp.IsZero())
}

func TestWatcherReportsDeletes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir, "*", nil).Start(ctx)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	e := collectEvent(t, events)
	assert.Equal(t, "user_data", e.Key)
	assert.Equal(t, core.EventDelete, e.Type)
}

func TestWatcherFiltersByPattern(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir, "notes", nil).Start(ctx)
	require.NoError(t, err)

	// Does not match the pattern, must be dropped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_data.json"), []byte("{}"), 0600))
	// Matches.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("[]"), 0600))

	e := collectEvent(t, events)
	assert.Equal(t, "notes", e.Key)

	select {
	case extra := <-events:
		t.Fatalf("unexpected extra event: %v", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresTempAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir, "*", nil).Start(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "inkwell-tmp-123"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0600))

	select {
	case e := <-events:
		t.Fatalf("unexpected event: %v", e)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir, "*", nil).Start(ctx)
	require.NoError(t, err)

	// A burst of writes well inside the debounce window.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0600))
	}

	collectEvent(t, events)

	// The burst collapses; no flood of trailing events.
	deadline := time.After(300 * time.Millisecond)
	count := 0
	for {
		select {
		case <-events:
			count++
		case <-deadline:
			assert.LessOrEqual(t, count, 1, "burst should be debounced")
			return
		}
	}
}

func TestWatcherStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := New(dir, "*", nil).Start(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after context cancel")
	}
}

func TestWatcherRejectsInvalidPattern(t *testing.T) {
	_, err := New(t.TempDir(), "[", nil).Start(context.Background())
	assert.Error(t, err)
}

func TestWatcherRejectsMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), "*", nil).Start(context.Background())
	assert.Error(t, err)
}
