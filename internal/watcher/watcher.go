// Package watcher wraps fsnotify for the drawing directory: it translates
// raw notifications into typed events, filters them, and debounces bursts so
// an editor save (often several writes) reaches the handlers once.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zawatton21/org-excalidraw/internal/logging"
)

// Kind is the category of a filesystem change.
type Kind int

const (
	KindCreated Kind = iota
	KindModified
	KindDeleted
	KindRenamed
	KindOther
)

// contentKind reports whether a kind signals changed drawing content.
func contentKind(k Kind) bool {
	return k == KindModified || k == KindRenamed
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "created"
	case KindModified:
		return "modified"
	case KindDeleted:
		return "deleted"
	case KindRenamed:
		return "renamed"
	default:
		return "other"
	}
}

// Event is one filesystem notification. It is consumed once and never
// persisted.
type Event struct {
	Kind Kind
	Path string
}

// Filter decides whether a path is interesting at all.
type Filter func(path string) bool

// Handler receives a debounced batch of events. A returned error is logged
// and the watch loop continues.
type Handler func(events []Event) error

// ExtensionFilter accepts paths whose final extension equals ext.
func ExtensionFilter(ext string) Filter {
	return func(path string) bool {
		return filepath.Ext(path) == ext
	}
}

// Watcher is the long-lived watch subscription on the drawing directory,
// torn down only at process shutdown via Stop or context cancellation.
type Watcher struct {
	fs        *fsnotify.Watcher
	debouncer *debouncer
	logger    *logging.Logger

	mu       sync.RWMutex
	filters  []Filter
	handlers []Handler
}

// New creates a watcher that flushes event batches after the directory has
// been quiet for debounce.
func New(debounce time.Duration, logger *logging.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fs: fs,
		debouncer: &debouncer{
			delay:   debounce,
			pending: make(map[string]Event),
			out:     make(chan []Event, 8),
			logger:  logger,
		},
		logger: logger,
	}, nil
}

// AddFilter adds a path filter. Events failing any filter are dropped before
// debouncing.
func (w *Watcher) AddFilter(f Filter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filters = append(w.filters, f)
}

// AddHandler adds a batch handler.
func (w *Watcher) AddHandler(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Watch arms the subscription on dir. The directory must already exist.
func (w *Watcher) Watch(dir string) error {
	return w.fs.Add(filepath.Clean(dir))
}

// Start runs the watch and dispatch loops until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
	go w.dispatchLoop(ctx)
}

// Stop tears down the subscription.
func (w *Watcher) Stop() error {
	w.debouncer.stop()
	return w.fs.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleNotification(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn(err, "watch error")
		}
	}
}

func (w *Watcher) handleNotification(ev fsnotify.Event) {
	w.mu.RLock()
	filters := w.filters
	w.mu.RUnlock()

	for _, f := range filters {
		if !f(ev.Name) {
			return
		}
	}

	var kind Kind
	switch {
	case ev.Op.Has(fsnotify.Create):
		kind = KindCreated
	case ev.Op.Has(fsnotify.Write):
		kind = KindModified
	case ev.Op.Has(fsnotify.Remove):
		kind = KindDeleted
	case ev.Op.Has(fsnotify.Rename):
		kind = KindRenamed
	default:
		kind = KindOther
	}

	w.debouncer.add(Event{Kind: kind, Path: ev.Name})
}

func (w *Watcher) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-w.debouncer.out:
			w.mu.RLock()
			handlers := w.handlers
			w.mu.RUnlock()

			for _, h := range handlers {
				if err := h(events); err != nil {
					w.logger.Error(err, "handler error")
				}
			}
		}
	}
}

// debouncer coalesces rapid changes into one event per path.
type debouncer struct {
	delay  time.Duration
	out    chan []Event
	logger *logging.Logger

	mu      sync.Mutex
	pending map[string]Event
	timer   *time.Timer
}

func (d *debouncer) add(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Editors often follow a write with a chmod or create in the same
	// window; a pending content change must survive that.
	if prev, ok := d.pending[ev.Path]; ok && contentKind(prev.Kind) && !contentKind(ev.Kind) {
		ev.Kind = prev.Kind
	}
	d.pending[ev.Path] = ev

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return
	}

	events := make([]Event, 0, len(d.pending))
	for _, ev := range d.pending {
		events = append(events, ev)
	}
	clear(d.pending)

	select {
	case d.out <- events:
	default:
		d.logger.Warn(nil, "event batch dropped, dispatch backed up",
			"events", len(events))
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
