// Package listing is the directory listing provider. It turns directory
// entries into items and answers listing requests published on the domain bus.
package listing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

// Lister lists one location
type Lister interface {
	ListDir(ctx context.Context, location string) ([]domain.Item, error)
}

// VirtualSource supplies the items of virtual:// locations it knows about
type VirtualSource interface {
	Virtual(location string) ([]domain.Item, bool)
}

var thumbnailExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "webp": true, "gif": true,
	"bmp": true, "tif": true, "tiff": true,
}

// HasThumbnail reports whether items with ext get a generated thumbnail
func HasThumbnail(ext string) bool {
	return thumbnailExts[ext]
}

// ItemID derives the stable id of a path
func ItemID(path string) string {
	return strconv.FormatUint(xxhash.Sum64String(filepath.Clean(path)), 16)
}

// NewItem builds an item from a path and its file info
func NewItem(path string, info os.FileInfo) domain.Item {
	name := filepath.Base(path)
	item := domain.Item{
		ID:    ItemID(path),
		Path:  path,
		Name:  name,
		IsDir: info.IsDir(),
	}
	if !item.IsDir {
		item.Ext = domain.ExtOf(name)
		item.Size = info.Size()
		item.HasThumbnail = HasThumbnail(item.Ext)
	}
	if mod := info.ModTime(); !mod.IsZero() {
		item.Modified = &mod
	}
	return item
}

// FileLister lists real directories from the local filesystem
type FileLister struct {
	virtual VirtualSource
}

// NewFileLister creates a lister. virtual may be nil.
func NewFileLister(virtual VirtualSource) *FileLister {
	return &FileLister{virtual: virtual}
}

// ListDir returns the entries of location in directory order. Virtual
// locations without a source are empty.
func (l *FileLister) ListDir(ctx context.Context, location string) ([]domain.Item, error) {
	if domain.IsVirtual(location) {
		if l.virtual != nil {
			if items, ok := l.virtual.Virtual(location); ok {
				return items, nil
			}
		}
		return []domain.Item{}, nil
	}

	dir := domain.ResolvePath(location)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	items := make([]domain.Item, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				info = target
			}
		}
		items = append(items, NewItem(path, info))
	}
	return items, nil
}

// Service answers ListingRequested events. A newer request cancels the one
// still running.
type Service struct {
	bus    eventbus.EventBus
	lister Lister
	log    logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
	wg     sync.WaitGroup
	unsub  func()
}

// NewService creates a listing service and subscribes it to the bus
func NewService(bus eventbus.EventBus, lister Lister) *Service {
	s := &Service{
		bus:    bus,
		lister: lister,
		log:    logrus.WithField("component", "listing"),
	}
	s.unsub = bus.Subscribe(eventbus.EventListingRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ListingRequestedEvent); ok {
			s.Load(context.Background(), event.Location)
		}
	})
	return s
}

// Load lists location in the background and publishes the outcome
func (s *Service) Load(ctx context.Context, location string) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		items, err := s.lister.ListDir(loadCtx, location)

		s.mu.Lock()
		stale := seq != s.seq
		s.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			s.log.WithError(err).WithField("location", location).Warn("listing failed")
			s.bus.Publish(eventbus.ListingFailedEvent{Location: location, Err: err})
			return
		}
		s.log.WithFields(logrus.Fields{"location": location, "items": len(items)}).Debug("listing loaded")
		s.bus.Publish(eventbus.ListingLoadedEvent{Location: location, Items: items})
	}()
}

// Stop cancels the running listing and waits for it
func (s *Service) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	if s.unsub != nil {
		s.unsub()
	}
	s.wg.Wait()
}
