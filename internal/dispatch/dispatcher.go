// Package dispatch reacts to drawing change events: for each qualifying
// event it requests an image re-render and splices the drawing's raw source
// into its companion org document. Every event is handled in isolation; a
// failure is logged and discarded so the watch subscription always survives.
package dispatch

import (
	"os"
	"sync"

	"github.com/zawatton21/org-excalidraw/internal/errors"
	"github.com/zawatton21/org-excalidraw/internal/logging"
	"github.com/zawatton21/org-excalidraw/internal/paths"
	"github.com/zawatton21/org-excalidraw/internal/splice"
	"github.com/zawatton21/org-excalidraw/internal/watcher"
)

// Renderer requests regeneration of a drawing's companion image. It has no
// result channel: render outcome is unobserved.
type Renderer interface {
	RequestRender(drawingPath string)
}

// Dispatcher is the background reaction loop between the drawing directory
// and the document directory. It has no caller to report to; errors are
// logged per event and never propagate.
type Dispatcher struct {
	docDir   string
	editor   *splice.Editor
	renderer Renderer
	logger   *logging.Logger

	mu    sync.Mutex
	locks map[string]*docLock
}

// docLock serializes writers of one companion document. The entry is
// refcounted and evicted once the last writer releases it, so the lock map
// stays bounded by in-flight events rather than every document ever touched.
type docLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a dispatcher writing companion documents under docDir.
func New(docDir string, editor *splice.Editor, renderer Renderer, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		docDir:   docDir,
		editor:   editor,
		renderer: renderer,
		logger:   logger,
		locks:    make(map[string]*docLock),
	}
}

// HandleEvents is the watcher handler. Events in a batch are processed one
// at a time, each isolated from the others.
func (d *Dispatcher) HandleEvents(events []watcher.Event) error {
	for _, ev := range events {
		d.handle(ev)
	}
	return nil
}

func (d *Dispatcher) handle(ev watcher.Event) {
	if ev.Kind != watcher.KindModified && ev.Kind != watcher.KindRenamed {
		d.logger.Debug("ignoring event", "kind", ev.Kind.String(), "path", ev.Path)
		return
	}
	if err := paths.Validate(ev.Path); err != nil {
		d.logger.Debug("ignoring non-drawing path", "path", ev.Path)
		return
	}

	d.renderer.RequestRender(ev.Path)

	docPath := paths.CompanionDocument(ev.Path, d.docDir)
	if _, err := os.Stat(docPath); err != nil {
		diag := errors.NewSyncError(errors.CodeMissingDocument,
			"no companion document").WithPath(docPath)
		d.logger.Info("event discarded", "drawing", ev.Path, "reason", diag.Error())
		return
	}

	if err := d.syncDocument(ev.Path, docPath); err != nil {
		d.logger.Warn(err, "event discarded", "drawing", ev.Path)
	}
}

// syncDocument is the read-modify-write critical section for one companion
// document. Writes to the same document path are serialized; distinct
// documents proceed independently.
func (d *Dispatcher) syncDocument(drawingPath, docPath string) error {
	lock := d.lockDocument(docPath)
	defer d.unlockDocument(docPath, lock)

	source, err := os.ReadFile(drawingPath)
	if err != nil {
		return errors.NewIOError(errors.CodeReadFailed, "reading drawing", err).WithPath(drawingPath)
	}

	docText, err := os.ReadFile(docPath)
	if err != nil {
		return errors.NewIOError(errors.CodeReadFailed, "reading document", err).WithPath(docPath)
	}

	updated, found, err := d.editor.OverwriteBlock(string(docText), string(source))
	if err != nil {
		return err
	}
	if !found {
		return errors.NewSyncError(errors.CodeMissingMarkers,
			"document has no source block markers").WithPath(docPath)
	}

	// Whole-file replace; no external reader sees a partial splice.
	if err := os.WriteFile(docPath, []byte(updated), 0o644); err != nil {
		return errors.NewIOError(errors.CodeWriteFailed, "writing document", err).WithPath(docPath)
	}

	d.logger.Info("document synchronized", "drawing", drawingPath, "document", docPath)
	return nil
}

func (d *Dispatcher) lockDocument(path string) *docLock {
	d.mu.Lock()
	l, ok := d.locks[path]
	if !ok {
		l = &docLock{}
		d.locks[path] = l
	}
	l.refs++
	d.mu.Unlock()

	l.mu.Lock()
	return l
}

func (d *Dispatcher) unlockDocument(path string, l *docLock) {
	l.mu.Unlock()

	d.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(d.locks, path)
	}
	d.mu.Unlock()
}
