package watch

import (
	"sync"
	"time"
)

// debouncer coalesces rapid successive events for the same key into
// one, keeping the latest. Atomic writes produce create+rename bursts
// that would otherwise surface as several events per mutation.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*pendingEvent
	stopped bool
	wg      sync.WaitGroup
}

type pendingEvent struct {
	timer *time.Timer
	emit  func()
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]*pendingEvent),
	}
}

// add schedules emit after the delay. If an event for the same key is
// already pending, the timer resets and the newer emit replaces it.
func (d *debouncer) add(key string, emit func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if p, ok := d.pending[key]; ok {
		p.emit = emit
		p.timer.Reset(d.delay)
		return
	}

	p := &pendingEvent{emit: emit}
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.pending, key)
		fire := p.emit
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fire()
		}
	})
	d.pending[key] = p
}

// stopAndWait stops accepting new events and waits for in-flight timers
// to fire or the timeout to elapse.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
