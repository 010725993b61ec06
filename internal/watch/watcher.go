// Package watch refreshes listings when a shown directory changes on disk
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"filegrip/internal/eventbus"
)

// DefaultDebounce collapses bursts of filesystem events into one refresh
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches the directories shown by open tabs
type Watcher struct {
	bus      eventbus.EventBus
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      logrus.FieldLogger

	mu      sync.Mutex
	dirs    map[string]bool
	timers  map[string]*time.Timer
	stop    chan struct{}
	done    chan struct{}
	unsub   func()
	stopped bool
}

// New creates a watcher and starts its event loop. It follows
// WatchRequested events and publishes DirectoryChanged events.
func New(bus eventbus.EventBus, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		bus:      bus,
		fs:       fsw,
		debounce: debounce,
		log:      logrus.WithField("component", "watch"),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	w.unsub = bus.Subscribe(eventbus.EventWatchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.WatchRequestedEvent); ok {
			w.Set(event.Paths)
		}
	})

	go w.loop()
	return w, nil
}

// Set replaces the watched directories. Paths that cannot be watched are
// logged and skipped.
func (w *Watcher) Set(paths []string) {
	want := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p != "" {
			want[filepath.Clean(p)] = true
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	for dir := range w.dirs {
		if !want[dir] {
			if err := w.fs.Remove(dir); err != nil {
				w.log.WithError(err).WithField("dir", dir).Debug("failed to unwatch")
			}
			delete(w.dirs, dir)
		}
	}
	for dir := range want {
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			w.log.WithError(err).WithField("dir", dir).Warn("failed to watch directory")
			continue
		}
		w.dirs[dir] = true
	}
}

// Watched returns the directories currently watched
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		out = append(out, dir)
	}
	return out
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.touch(filepath.Dir(event.Name))

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("fsnotify watcher error")

		case <-w.stop:
			return
		}
	}
}

// touch schedules a change notification for dir, pushing back any pending one
func (w *Watcher) touch(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || !w.dirs[dir] {
		return
	}
	if t, ok := w.timers[dir]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[dir] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, dir)
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			w.bus.Publish(eventbus.DirectoryChangedEvent{Path: dir})
		}
	})
}

// Close stops watching
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()

	w.unsub()
	close(w.stop)
	err := w.fs.Close()
	<-w.done
	return err
}
