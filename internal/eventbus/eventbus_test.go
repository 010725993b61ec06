package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventListingLoaded, func(e DomainEvent) { got <- e })

	b.Publish(ListingLoadedEvent{Location: "/tmp"})

	select {
	case e := <-got:
		loaded, ok := e.(ListingLoadedEvent)
		require.True(t, ok)
		assert.Equal(t, "/tmp", loaded.Location)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var kept, dropped atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { dropped.Add(1) })
	b.Subscribe(EventError, func(DomainEvent) { kept.Add(1) })
	unsubscribe()

	b.Publish(ErrorEvent{Message: "boom"})

	require.Eventually(t, func() bool { return kept.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), dropped.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventAppReady, func(DomainEvent) { panic("bad handler") })
	b.Subscribe(EventAppReady, func(DomainEvent) { calls.Add(1) })

	b.Publish(AppReadyEvent{})
	b.Publish(AppReadyEvent{})

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseDoesNotBlock(t *testing.T) {
	b := New()
	b.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 2000; i++ {
			b.Publish(AppReadyEvent{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked after close")
	}
}
