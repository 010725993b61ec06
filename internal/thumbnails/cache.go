// Package thumbnails owns the client side of thumbnail acquisition: a cache
// of resolved images, the set of ids with a request in flight, and a bounded
// poll loop that fetches generated bytes and hands them to observers.
package thumbnails

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults for the poll loop
const (
	DefaultInterval   = 600 * time.Millisecond
	DefaultMaxRetries = 20
)

// Provider generates thumbnails and serves their bytes.
// FetchBytes returns an empty payload or an error while the thumbnail is not ready.
type Provider interface {
	RequestGeneration(ctx context.Context, id string) error
	FetchBytes(ctx context.Context, id string) ([]byte, error)
}

// Clock schedules poll retries
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Callback receives a resolved image
type Callback func(*Image)

// Option customises a Cache
type Option func(*Cache)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(s *Cache) { s.clock = c }
}

// WithInterval sets the delay between fetch attempts
func WithInterval(d time.Duration) Option {
	return func(s *Cache) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithMaxRetries sets the number of fetch attempts each observer is granted
func WithMaxRetries(n int) Option {
	return func(s *Cache) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithLogger sets the logger for swallowed provider errors
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Cache) { s.log = l }
}

// cycle tracks the shared poll loop of one id. Every observer that joins
// pushes last out to its own full budget of attempts.
type cycle struct {
	attempt int
	last    int
}

// Cache is the thumbnail cache service. Entries never expire. An id is
// pending while one request cycle runs for it; after a cycle gives up the
// id is neither cached nor pending, so the next observation starts over.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*Image
	pending   map[string]*cycle
	observers map[string]map[uint64]Callback
	nextObs   uint64

	provider   Provider
	clock      Clock
	interval   time.Duration
	maxRetries int
	log        logrus.FieldLogger
	wg         sync.WaitGroup
}

// NewCache creates a cache backed by provider
func NewCache(provider Provider, opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]*Image),
		pending:    make(map[string]*cycle),
		observers:  make(map[string]map[uint64]Callback),
		provider:   provider,
		clock:      realClock{},
		interval:   DefaultInterval,
		maxRetries: DefaultMaxRetries,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached image for id
func (c *Cache) Get(id string) (*Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.entries[id]
	return img, ok
}

// Len returns the number of cached images
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// IsPending reports whether a request cycle is running for id
func (c *Cache) IsPending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[id] != nil
}

// MarkPending claims id for a new request cycle. It returns false when the
// id is already cached or pending.
func (c *Cache) MarkPending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markPendingLocked(id)
}

func (c *Cache) markPendingLocked(id string) bool {
	if c.pending[id] != nil {
		return false
	}
	if _, ok := c.entries[id]; ok {
		return false
	}
	c.pending[id] = &cycle{last: c.maxRetries}
	return true
}

// extendLocked grants a newly joined observer maxRetries attempts counted
// from the next one
func (c *Cache) extendLocked(id string) {
	if cyc := c.pending[id]; cyc != nil && cyc.attempt+c.maxRetries > cyc.last {
		cyc.last = cyc.attempt + c.maxRetries
	}
}

// nextAttempt claims the next attempt of the cycle for id. Once every
// observer's budget is spent it ends the cycle under the same lock, so an
// observer joining concurrently starts a fresh cycle instead of being lost.
func (c *Cache) nextAttempt(id string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cyc := c.pending[id]
	if cyc == nil {
		return 0, false
	}
	if cyc.attempt >= cyc.last {
		delete(c.pending, id)
		delete(c.observers, id)
		return 0, false
	}
	cyc.attempt++
	return cyc.attempt, true
}

// Resolve stores img, ends the request cycle and delivers img to every
// current observer of id
func (c *Cache) Resolve(id string, img *Image) {
	c.mu.Lock()
	c.entries[id] = img
	delete(c.pending, id)
	callbacks := make([]Callback, 0, len(c.observers[id]))
	for _, cb := range c.observers[id] {
		callbacks = append(callbacks, cb)
	}
	delete(c.observers, id)
	c.mu.Unlock()

	for _, cb := range callbacks {
		cb(img)
	}
}

// abandon ends a request cycle without a result
func (c *Cache) abandon(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
	delete(c.observers, id)
}

// Observe asks for the thumbnail of id. A cached image is delivered
// immediately. Otherwise cb is called once the image resolves, unless the
// returned cancel func runs first. Cancelling never stops the request cycle.
func (c *Cache) Observe(ctx context.Context, id string, cb Callback) (cancel func()) {
	c.mu.Lock()
	if img, ok := c.entries[id]; ok {
		c.mu.Unlock()
		cb(img)
		return func() {}
	}

	c.nextObs++
	token := c.nextObs
	if c.observers[id] == nil {
		c.observers[id] = make(map[uint64]Callback)
	}
	c.observers[id][token] = cb
	start := c.markPendingLocked(id)
	if !start {
		c.extendLocked(id)
	}
	c.mu.Unlock()

	if start {
		c.wg.Add(1)
		go c.acquire(ctx, id)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.observers[id], token)
		})
	}
}

// Wait blocks until every running request cycle has finished
func (c *Cache) Wait() {
	c.wg.Wait()
}

func (c *Cache) acquire(ctx context.Context, id string) {
	defer c.wg.Done()
	log := c.log.WithField("id", id)

	if err := c.provider.RequestGeneration(ctx, id); err != nil {
		log.WithError(err).Warn("thumbnail request failed")
	}

	for {
		attempt, ok := c.nextAttempt(id)
		if !ok {
			break
		}
		if attempt > 1 {
			select {
			case <-ctx.Done():
				c.abandon(id)
				return
			case <-c.clock.After(c.interval):
			}
		}

		data, err := c.provider.FetchBytes(ctx, id)
		if err != nil || len(data) == 0 {
			continue
		}
		img, err := Decode(id, data)
		if err != nil {
			log.WithError(err).Warn("thumbnail payload rejected")
			continue
		}
		log.WithField("attempt", attempt).Debug("thumbnail resolved")
		c.Resolve(id, img)
		return
	}

	log.Debug("thumbnail polling gave up")
}
