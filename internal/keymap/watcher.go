package keymap

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event carries a rebuilt keymap, or the error that prevented rebuilding it.
// On error the caller keeps its current map.
type Event struct {
	Map      Map
	Warnings []string
	Err      error
}

// Watcher rebuilds the keymap whenever its file changes on disk.
type Watcher struct {
	source Source
	path   string

	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches source.File. The parent directory is watched rather
// than the file so that editors replacing the file via rename keep
// triggering reloads. Rebuilds are spaced at least settle apart.
func NewWatcher(source Source, settle time.Duration) (*Watcher, error) {
	if source.File == "" {
		return nil, fmt.Errorf("keymap watcher: no keymap file configured")
	}
	path, err := filepath.Abs(source.File)
	if err != nil {
		return nil, fmt.Errorf("keymap watcher: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("keymap watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("keymap watcher: watch %s: %w", filepath.Dir(path), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		path:     path,
		fs:       fsw,
		throttle: newThrottle(settle),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Events returns the channel of rebuilt keymaps. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path is the absolute path of the watched keymap file.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited and Events is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.events)
	defer w.fs.Close()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.throttle.wait()
			w.drain()
			m, warns, err := w.source.Build()
			if !w.emit(Event{Map: m, Warnings: warns, Err: err}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Err: fmt.Errorf("keymap watcher: %w", err)}) {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// drain discards events queued while the throttle was waiting; the rebuild
// that follows reads the file's latest contents anyway.
func (w *Watcher) drain() {
	for {
		select {
		case <-w.fs.Events:
		default:
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
