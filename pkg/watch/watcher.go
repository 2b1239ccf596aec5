// Package watch observes the storage directory and reports key changes,
// letting another process follow mutations as they land on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/inkwell/pkg/core"
)

const (
	debounceDelay = 50 * time.Millisecond
	eventBuffer   = 16
)

// Watcher emits a core.Event for every storage key whose file changes.
type Watcher struct {
	dir     string
	pattern string
	logger  *slog.Logger
}

// New creates a watcher over a storage directory. The pattern is a
// doublestar glob matched against storage keys; empty matches all.
func New(dir, pattern string, logger *slog.Logger) *Watcher {
	if pattern == "" {
		pattern = "*"
	}
	return &Watcher{dir: dir, pattern: pattern, logger: logger}
}

// Start begins watching and returns the event channel. The channel is
// closed when the context ends or the underlying watcher fails.
func (w *Watcher) Start(ctx context.Context) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(w.pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", w.pattern)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	events := make(chan core.Event, eventBuffer)
	go w.run(ctx, fsw, events)
	return events, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, events chan<- core.Event) {
	defer close(events)
	defer fsw.Close()

	deb := newDebouncer(debounceDelay)
	defer deb.stopAndWait(5 * time.Second)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handle(ctx, event, deb, events)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event, deb *debouncer, events chan<- core.Event) {
	key, ok := w.resolveKey(event.Name)
	if !ok {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	if w.logger != nil {
		w.logger.Debug("storage change", "key", key, "type", eType)
	}

	deb.add(key, func() {
		e := core.Event{Type: eType, Key: key, Timestamp: time.Now()}
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
}

// resolveKey maps a changed path to a storage key, ignoring temp files
// from atomic writes and anything that is not a storage record.
func (w *Watcher) resolveKey(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "inkwell-tmp-") {
		return "", false
	}
	key, found := strings.CutSuffix(name, ".json")
	if !found || key == "" {
		return "", false
	}
	if matched, err := doublestar.Match(w.pattern, key); err != nil || !matched {
		return "", false
	}
	return key, true
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
