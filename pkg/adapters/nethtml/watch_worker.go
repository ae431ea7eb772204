package nethtml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/domkit/pkg/core"
)

// Watch re-parses the backing file on change and emits a SourceEvent per
// reload. It implements the optional core.Watchable capability; trees
// built from a reader or string have no backing file and cannot watch.
func (t *Tree) Watch(ctx context.Context) (<-chan core.SourceEvent, error) {
	if t.config.Path == "" {
		return nil, errors.New("tree has no backing file to watch")
	}
	events := make(chan core.SourceEvent, 16)
	w := newWatchWorker(t, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

var _ core.Watchable = (*Tree)(nil)

type watchWorker struct {
	*worker.BaseWorker
	tree      *Tree
	events    chan<- core.SourceEvent
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(tree *Tree, events chan<- core.SourceEvent) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("document-watcher"),
		tree:       tree,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save,
	// which would orphan a file-level watch.
	if err := watcher.Add(filepath.Dir(w.tree.config.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.tree.config.Path, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.tree.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) error {
	defer w.tree.setWatcherActive(false)
	defer w.watcher.Close()

	err := w.mainEventLoop(ctx)

	// Stop accepting new events and wait for in-flight timers so cleanup
	// cannot race a late send.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.tree.config.Logger != nil {
				w.tree.config.Logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

// processFilesystemEvent filters, maps and debounces filesystem events
// for the backing file.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.tree.config.Path) {
		return
	}
	if w.tree.config.Logger != nil {
		w.tree.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	switch {
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		if err := w.reload(); err != nil {
			if w.tree.config.Logger != nil {
				w.tree.config.Logger.Error("reload failed", "path", event.Name, "error", err)
			}
			return
		}
		w.sendEvent(ctx, core.SourceEvent{
			Type:      core.SourceReload,
			Path:      w.tree.config.Path,
			Timestamp: time.Now().Unix(),
		})

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		w.sendEvent(ctx, core.SourceEvent{
			Type:      core.SourceRemove,
			Path:      w.tree.config.Path,
			Timestamp: time.Now().Unix(),
		})
	}
}

// reload re-parses the backing file and swaps the document. Listeners and
// focus pointed into the old tree are dropped with it.
func (w *watchWorker) reload() error {
	f, err := os.Open(w.tree.config.Path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	fresh, err := Parse(f, Config{})
	if err != nil {
		return err
	}
	w.tree.swapDoc(fresh.doc)
	return nil
}

// sendEvent enqueues an event via the debouncer, protecting against
// channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.SourceEvent) {
	w.debouncer.add(event, func(e core.SourceEvent) {
		defer func() {
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}
