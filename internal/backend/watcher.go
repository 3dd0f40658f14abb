package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-multiselect/internal/catalog"
	"github.com/atomicstack/tmux-multiselect/internal/selection"
)

// Event conveys a freshly loaded catalog or the error from a poll.
type Event struct {
	Source  string
	Options []selection.Option
	Err     error
}

// Watcher polls a catalog source at a fixed interval and publishes events.
type Watcher struct {
	source   catalog.Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that loads source immediately and then every
// interval. Non-positive intervals produce the initial event only.
func NewWatcher(source catalog.Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) ([]selection.Option, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return w.source.Load(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of catalog events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(fetch func(context.Context) ([]selection.Option, error)) {
	defer w.wg.Done()

	emit := func() bool {
		options, err := fetch(w.ctx)
		evt := Event{Source: w.source.Name(), Options: options, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
