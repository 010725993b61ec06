package sidebar

import (
	"path/filepath"
	"sync"

	"filegrip/internal/eventbus"
)

// Favorites manages the user's favourite directories
type Favorites interface {
	Add(path string) bool
	Remove(path string) bool
	Contains(path string) bool
	List() []string
}

type favorites struct {
	bus   eventbus.EventBus
	mu    sync.RWMutex
	paths []string
}

// NewFavorites creates a favourites manager seeded from config. Every change
// publishes a ConfigChangedEvent so the configuration can be saved.
func NewFavorites(bus eventbus.EventBus, initial []string) Favorites {
	f := &favorites{bus: bus}
	for _, p := range initial {
		f.add(p)
	}
	return f
}

func (f *favorites) add(path string) bool {
	path = filepath.Clean(path)
	for _, p := range f.paths {
		if p == path {
			return false
		}
	}
	f.paths = append(f.paths, path)
	return true
}

// Add appends path unless it is already a favourite
func (f *favorites) Add(path string) bool {
	f.mu.Lock()
	added := f.add(path)
	snapshot := append([]string(nil), f.paths...)
	f.mu.Unlock()

	if added {
		f.publish(snapshot)
	}
	return added
}

// Remove drops path from the favourites
func (f *favorites) Remove(path string) bool {
	path = filepath.Clean(path)

	f.mu.Lock()
	removed := false
	for i, p := range f.paths {
		if p == path {
			f.paths = append(f.paths[:i:i], f.paths[i+1:]...)
			removed = true
			break
		}
	}
	snapshot := append([]string(nil), f.paths...)
	f.mu.Unlock()

	if removed {
		f.publish(snapshot)
	}
	return removed
}

// Contains checks if path is a favourite
func (f *favorites) Contains(path string) bool {
	path = filepath.Clean(path)
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.paths {
		if p == path {
			return true
		}
	}
	return false
}

// List returns the favourites in insertion order
func (f *favorites) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.paths...)
}

func (f *favorites) publish(paths []string) {
	if f.bus == nil {
		return
	}
	f.bus.Publish(eventbus.ConfigChangedEvent{Favorites: paths})
	f.bus.Publish(eventbus.FavoritesChangedEvent{Favorites: paths})
}
