package commands

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/ui/state"
)

type fakeOpener struct {
	mu     sync.Mutex
	opened []string
}

func (f *fakeOpener) OpenFile(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, path)
}

type fakeFavorites struct {
	paths map[string]bool
}

func (f *fakeFavorites) Add(p string) bool {
	if f.paths[p] {
		return false
	}
	f.paths[p] = true
	return true
}

func (f *fakeFavorites) Remove(p string) bool {
	if !f.paths[p] {
		return false
	}
	delete(f.paths, p)
	return true
}

func (f *fakeFavorites) Contains(p string) bool { return f.paths[p] }

func (f *fakeFavorites) List() []string {
	var out []string
	for p := range f.paths {
		out = append(out, p)
	}
	return out
}

func newExecutor() (*Executor, *CommandContext, *fakeOpener, *string) {
	opener := &fakeOpener{}
	var clip string
	ctx := &CommandContext{
		State:     state.NewAppState(),
		Opener:    opener,
		Favorites: &fakeFavorites{paths: map[string]bool{}},
		Clipboard: func(text string) error {
			clip = text
			return nil
		},
	}
	return NewExecutor(ctx), ctx, opener, &clip
}

func TestExecuteOpenDirect(t *testing.T) {
	e, ctx, opener, _ := newExecutor()

	_, confirm := e.ExecuteOpen([]string{"/a.txt", "/b.txt"})
	assert.False(t, confirm)
	assert.Equal(t, []string{"/a.txt", "/b.txt"}, opener.opened)
	assert.Equal(t, "Opening 2 files", ctx.State.StatusMessage)
}

func TestExecuteOpenAsksForMany(t *testing.T) {
	e, ctx, opener, _ := newExecutor()
	paths := []string{"/1", "/2", "/3", "/4", "/5", "/6"}

	_, confirm := e.ExecuteOpen(paths)
	require.True(t, confirm)
	assert.Empty(t, opener.opened)
	assert.Equal(t, paths, ctx.State.PendingOpen)

	e.ExecuteConfirmedOpen()
	assert.Equal(t, paths, opener.opened)
	assert.Empty(t, ctx.State.PendingOpen)
}

func TestExecuteCopyPaths(t *testing.T) {
	e, ctx, _, clip := newExecutor()

	e.ExecuteCopyPaths([]string{"/a", "/b"})
	assert.Equal(t, "/a\n/b", *clip)
	assert.Equal(t, "Copied 2 paths", ctx.State.StatusMessage)

	e.ExecuteCopyPaths(nil)
	assert.Equal(t, state.StatusWarning, ctx.State.StatusLevel)
}

func TestExecuteCopyPathsFailure(t *testing.T) {
	e, ctx, _, _ := newExecutor()
	ctx.Clipboard = func(string) error { return errors.New("no display") }

	e.ExecuteCopyPaths([]string{"/a"})
	assert.Equal(t, state.StatusError, ctx.State.StatusLevel)
	assert.Contains(t, ctx.State.StatusMessage, "no display")
}

func TestExecuteToggleFavorite(t *testing.T) {
	e, ctx, _, _ := newExecutor()

	e.ExecuteToggleFavorite("/docs")
	assert.True(t, ctx.Favorites.Contains("/docs"))
	assert.Equal(t, "Added to favourites", ctx.State.StatusMessage)

	e.ExecuteToggleFavorite("/docs")
	assert.False(t, ctx.Favorites.Contains("/docs"))

	e.ExecuteToggleFavorite("")
	assert.Equal(t, state.StatusWarning, ctx.State.StatusLevel)
}
