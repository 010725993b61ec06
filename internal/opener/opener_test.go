package opener

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/eventbus"
)

func TestCommandPerPlatform(t *testing.T) {
	name, args := Command("darwin", "/a b")
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"/a b"}, args)

	name, args = Command("windows", `C:\x.txt`)
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/c", "start", "", `C:\x.txt`}, args)

	name, _ = Command("linux", "/x")
	assert.Equal(t, "xdg-open", name)
}

func TestOpenRunsCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := NewWithRunner("linux", func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return nil, nil
	})

	require.NoError(t, o.Open(context.Background(), "/tmp/x.pdf"))
	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{"/tmp/x.pdf"}, gotArgs)
}

func TestOpenWrapsFailure(t *testing.T) {
	boom := errors.New("exit status 4")
	o := NewWithRunner("linux", func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("no handler\n"), boom
	})

	err := o.Open(context.Background(), "/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "no handler")
}

type stubOpener struct{ err error }

func (s stubOpener) Open(context.Context, string) error { return s.err }

func TestServicePublishesResult(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.FileOpenedEvent, 1)
	bus.Subscribe(eventbus.EventFileOpened, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.FileOpenedEvent)
	})

	NewService(bus, stubOpener{err: errors.New("nope")}).OpenFile("/f")
	select {
	case ev := <-got:
		assert.Equal(t, "/f", ev.Path)
		assert.Error(t, ev.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}
}
