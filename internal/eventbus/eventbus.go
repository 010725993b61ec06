package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"filegrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventListingRequested  = domain.EventListingRequested
	EventListingLoaded     = domain.EventListingLoaded
	EventListingFailed     = domain.EventListingFailed
	EventDirectoryChanged  = domain.EventDirectoryChanged
	EventWatchRequested    = domain.EventWatchRequested
	EventThumbnailResolved = domain.EventThumbnailResolved
	EventSidebarLoaded     = domain.EventSidebarLoaded
	EventBackendReady      = domain.EventBackendReady
	EventBackendFailed     = domain.EventBackendFailed
	EventFileOpened        = domain.EventFileOpened
	EventError             = domain.EventError
	EventConfigChanged     = domain.EventConfigChanged
	EventFavoritesChanged  = domain.EventFavoritesChanged
	EventAppReady          = domain.EventAppReady
)

// Re-export domain event types
type ListingRequestedEvent = domain.ListingRequestedEvent
type ListingLoadedEvent = domain.ListingLoadedEvent
type ListingFailedEvent = domain.ListingFailedEvent
type DirectoryChangedEvent = domain.DirectoryChangedEvent
type WatchRequestedEvent = domain.WatchRequestedEvent
type ThumbnailResolvedEvent = domain.ThumbnailResolvedEvent
type SidebarLoadedEvent = domain.SidebarLoadedEvent
type BackendReadyEvent = domain.BackendReadyEvent
type BackendFailedEvent = domain.BackendFailedEvent
type FileOpenedEvent = domain.FileOpenedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type FavoritesChangedEvent = domain.FavoritesChangedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       logrus.FieldLogger
}

// New creates a new event bus
func New() EventBus {
	return NewWithLogger(logrus.StandardLogger())
}

// NewWithLogger creates a bus that logs through the given logger
func NewWithLogger(log logrus.FieldLogger) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       log.WithField("component", "eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventThumbnailResolved, EventDirectoryChanged:
		// too frequent to log
	default:
		b.log.Debugf("publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	case <-b.quit:
	default:
		b.log.Warnf("event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				// Handlers run concurrently so a slow one cannot stall the bus
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.log.Errorf("event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
