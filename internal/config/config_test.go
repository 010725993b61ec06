package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.HomeLocation, cfg.StartLocation)
	assert.Equal(t, 600*time.Millisecond, cfg.Thumbnails.PollInterval())
	assert.Equal(t, 20, cfg.Thumbnails.MaxRetries)
	assert.Equal(t, 5, cfg.Startup.ConnectRetries)
	assert.Equal(t, time.Second, cfg.Startup.ConnectDelay())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.UISettings.DefaultView = domain.ViewList
	cfg.UISettings.DefaultGroup = domain.GroupExt
	cfg.Favorites = []string{"/srv/media"}
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ViewList, loaded.UISettings.DefaultView)
	assert.Equal(t, domain.GroupExt, loaded.UISettings.DefaultGroup)
	assert.Equal(t, []string{"/srv/media"}, loaded.Favorites)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ndefault_sort = \"size\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.SortSize, cfg.UISettings.DefaultSort)
	assert.Equal(t, domain.OrderAsc, cfg.UISettings.DefaultOrder)
	assert.Equal(t, 256, cfg.Thumbnails.MaxSize)
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ndefault_group = \"colour\"\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = = 1"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSavePublishesFavorites(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan []string, 1)
	bus.Subscribe(eventbus.EventFavoritesChanged, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.FavoritesChangedEvent).Favorites
	})

	svc := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), bus)
	cfg := DefaultConfig()
	cfg.Favorites = []string{"/a", "/b"}
	require.NoError(t, svc.Save(cfg))

	select {
	case favs := <-got:
		assert.Equal(t, []string{"/a", "/b"}, favs)
	case <-time.After(time.Second):
		t.Fatal("no favorites event")
	}
}
