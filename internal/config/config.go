package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

// ErrInvalidConfig is returned when a loaded config holds values the browser cannot use
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version       int               `toml:"version"`
	StartLocation string            `toml:"start_location"`
	UISettings    UISettings        `toml:"ui"`
	Thumbnails    ThumbnailSettings `toml:"thumbnails"`
	Startup       StartupSettings   `toml:"startup"`
	Favorites     []string          `toml:"favorites"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultView  domain.ViewMode  `toml:"default_view"`
	DefaultGroup domain.GroupMode `toml:"default_group"`
	DefaultSort  domain.SortMode  `toml:"default_sort"`
	DefaultOrder domain.SortOrder `toml:"default_order"`
	ShowHidden   bool             `toml:"show_hidden"`
	ShowPreview  bool             `toml:"show_preview"`
}

// ThumbnailSettings controls thumbnail generation and polling
type ThumbnailSettings struct {
	PollIntervalMs int    `toml:"poll_interval_ms"`
	MaxRetries     int    `toml:"max_retries"`
	MaxSize        int    `toml:"max_size"`
	CacheDir       string `toml:"cache_dir"`
	Workers        int    `toml:"workers"`
}

// StartupSettings controls the backend connectivity check
type StartupSettings struct {
	ConnectRetries int `toml:"connect_retries"`
	ConnectDelayMs int `toml:"connect_delay_ms"`
}

// PollInterval returns the poll interval as a duration
func (t ThumbnailSettings) PollInterval() time.Duration {
	return time.Duration(t.PollIntervalMs) * time.Millisecond
}

// ConnectDelay returns the delay between connection attempts
func (s StartupSettings) ConnectDelay() time.Duration {
	return time.Duration(s.ConnectDelayMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "filegrip", "config.toml")
}

// NewConfigService creates a config service reading and writing path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.FavoritesChangedEvent{Favorites: append([]string(nil), config.Favorites...)})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects enum values the browser does not know
func (c *Config) Validate() error {
	ui := c.UISettings
	switch {
	case !ui.DefaultView.Valid():
		return fmt.Errorf("%w: unknown view mode %q", ErrInvalidConfig, ui.DefaultView)
	case !ui.DefaultGroup.Valid():
		return fmt.Errorf("%w: unknown group mode %q", ErrInvalidConfig, ui.DefaultGroup)
	case !ui.DefaultSort.Valid():
		return fmt.Errorf("%w: unknown sort mode %q", ErrInvalidConfig, ui.DefaultSort)
	case !ui.DefaultOrder.Valid():
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidConfig, ui.DefaultOrder)
	case c.Thumbnails.MaxRetries < 0 || c.Startup.ConnectRetries < 0:
		return fmt.Errorf("%w: retry counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills zero values from DefaultConfig
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.StartLocation == "" {
		c.StartLocation = d.StartLocation
	}
	if c.UISettings.DefaultView == "" {
		c.UISettings.DefaultView = d.UISettings.DefaultView
	}
	if c.UISettings.DefaultGroup == "" {
		c.UISettings.DefaultGroup = d.UISettings.DefaultGroup
	}
	if c.UISettings.DefaultSort == "" {
		c.UISettings.DefaultSort = d.UISettings.DefaultSort
	}
	if c.UISettings.DefaultOrder == "" {
		c.UISettings.DefaultOrder = d.UISettings.DefaultOrder
	}
	if c.Thumbnails.PollIntervalMs == 0 {
		c.Thumbnails.PollIntervalMs = d.Thumbnails.PollIntervalMs
	}
	if c.Thumbnails.MaxRetries == 0 {
		c.Thumbnails.MaxRetries = d.Thumbnails.MaxRetries
	}
	if c.Thumbnails.MaxSize == 0 {
		c.Thumbnails.MaxSize = d.Thumbnails.MaxSize
	}
	if c.Thumbnails.CacheDir == "" {
		c.Thumbnails.CacheDir = d.Thumbnails.CacheDir
	}
	if c.Thumbnails.Workers == 0 {
		c.Thumbnails.Workers = d.Thumbnails.Workers
	}
	if c.Startup.ConnectRetries == 0 {
		c.Startup.ConnectRetries = d.Startup.ConnectRetries
	}
	if c.Startup.ConnectDelayMs == 0 {
		c.Startup.ConnectDelayMs = d.Startup.ConnectDelayMs
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return &Config{
		Version:       1,
		StartLocation: domain.HomeLocation,
		UISettings: UISettings{
			DefaultView:  domain.ViewGrid,
			DefaultGroup: domain.GroupNone,
			DefaultSort:  domain.SortName,
			DefaultOrder: domain.OrderAsc,
			ShowPreview:  true,
		},
		Thumbnails: ThumbnailSettings{
			PollIntervalMs: 600,
			MaxRetries:     20,
			MaxSize:        256,
			CacheDir:       filepath.Join(cacheDir, "filegrip", "thumbnails"),
			Workers:        4,
		},
		Startup: StartupSettings{
			ConnectRetries: 5,
			ConnectDelayMs: 1000,
		},
		Favorites: []string{},
	}
}
