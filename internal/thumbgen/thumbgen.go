// Package thumbgen is the thumbnail provider: it scales source images down
// on a bounded worker pool and serves the encoded results from memory or
// from the on-disk cache.
package thumbgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

var (
	// ErrNotReady means no thumbnail has been generated for the id yet
	ErrNotReady = errors.New("thumbnail not ready")
	// ErrUnsupported means the source cannot be decoded as an image
	ErrUnsupported = errors.New("unsupported image")
	// ErrUnknownItem means the id was never registered
	ErrUnknownItem = errors.New("unknown item")
)

// Options configures a Generator
type Options struct {
	CacheDir string
	MaxSize  int
	Workers  int
}

// Generator produces thumbnails for registered items
type Generator struct {
	mu       sync.Mutex
	paths    map[string]string
	mem      map[string][]byte
	inflight map[string]bool

	sem      *semaphore.Weighted
	maxSize  int
	cacheDir string
	log      logrus.FieldLogger
	wg       sync.WaitGroup
}

// New creates a generator
func New(opts Options) *Generator {
	if opts.MaxSize <= 0 {
		opts.MaxSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	return &Generator{
		paths:    make(map[string]string),
		mem:      make(map[string][]byte),
		inflight: make(map[string]bool),
		sem:      semaphore.NewWeighted(int64(opts.Workers)),
		maxSize:  opts.MaxSize,
		cacheDir: opts.CacheDir,
		log:      logrus.WithField("component", "thumbgen"),
	}
}

// Register makes items with thumbnails known by id
func (g *Generator) Register(items []domain.Item) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, item := range items {
		if item.HasThumbnail {
			g.paths[item.ID] = item.Path
		}
	}
}

// Attach registers every listing published on the bus
func (g *Generator) Attach(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventListingLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ListingLoadedEvent); ok {
			g.Register(event.Items)
		}
	})
}

func (g *Generator) cachePath(id string) string {
	if g.cacheDir == "" {
		return ""
	}
	return filepath.Join(g.cacheDir, id+".png")
}

// RequestGeneration starts generating the thumbnail of id in the background.
// Requests for ready or in-flight ids return immediately.
func (g *Generator) RequestGeneration(ctx context.Context, id string) error {
	g.mu.Lock()
	path, ok := g.paths[id]
	_, ready := g.mem[id]
	busy := g.inflight[id]
	if ok && !ready && !busy {
		g.inflight[id] = true
	}
	g.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to request thumbnail %s: %w", id, ErrUnknownItem)
	}
	if ready || busy {
		return nil
	}
	if g.freshOnDisk(id, path) {
		g.mu.Lock()
		delete(g.inflight, id)
		g.mu.Unlock()
		return nil
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			g.mu.Lock()
			delete(g.inflight, id)
			g.mu.Unlock()
		}()

		if err := g.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer g.sem.Release(1)

		data, err := g.generate(id, path)
		if err != nil {
			g.log.WithError(err).WithField("path", path).Warn("thumbnail generation failed")
			return
		}
		g.mu.Lock()
		g.mem[id] = data
		g.mu.Unlock()
	}()
	return nil
}

func (g *Generator) freshOnDisk(id, source string) bool {
	cached := g.cachePath(id)
	if cached == "" {
		return false
	}
	ci, err := os.Stat(cached)
	if err != nil {
		return false
	}
	si, err := os.Stat(source)
	if err != nil {
		return false
	}
	return !ci.ModTime().Before(si.ModTime())
}

// FetchBytes returns the encoded thumbnail of id, or ErrNotReady
func (g *Generator) FetchBytes(ctx context.Context, id string) ([]byte, error) {
	g.mu.Lock()
	data, ok := g.mem[id]
	busy := g.inflight[id]
	g.mu.Unlock()
	if ok {
		return data, nil
	}
	if busy {
		return nil, ErrNotReady
	}

	if cached := g.cachePath(id); cached != "" {
		if data, err := os.ReadFile(cached); err == nil && len(data) > 0 {
			g.mu.Lock()
			g.mem[id] = data
			g.mu.Unlock()
			return data, nil
		}
	}
	return nil, ErrNotReady
}

// Wait blocks until all running generations finish
func (g *Generator) Wait() {
	g.wg.Wait()
}

func (g *Generator) generate(id, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w: %v", path, ErrUnsupported, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Scale(src, g.maxSize)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	data := buf.Bytes()

	if cached := g.cachePath(id); cached != "" {
		if err := os.MkdirAll(g.cacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache dir: %w", err)
		}
		if err := os.WriteFile(cached, data, 0o644); err != nil {
			g.log.WithError(err).Warn("failed to write thumbnail cache")
		}
	}
	return data, nil
}

// Scale shrinks img so its longest side is at most maxSize, keeping the
// aspect ratio. Smaller images are returned as they are.
func Scale(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSize && h <= maxSize || w == 0 || h == 0 {
		return img
	}

	tw, th := maxSize, maxSize
	if w >= h {
		th = h * maxSize / w
	} else {
		tw = w * maxSize / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
