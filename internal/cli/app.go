package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"filegrip/internal/backend"
	"filegrip/internal/config"
	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/listing"
	"filegrip/internal/opener"
	"filegrip/internal/sidebar"
	"filegrip/internal/thumbgen"
	"filegrip/internal/thumbnails"
	"filegrip/internal/ui"
	"filegrip/internal/watch"
)

// Settings are the command line inputs of one run
type Settings struct {
	ConfigPath  string
	Location    string
	ReadyMarker bool
}

// uiEvents are the domain events the UI reacts to
var uiEvents = []eventbus.EventType{
	eventbus.EventListingLoaded,
	eventbus.EventListingFailed,
	eventbus.EventDirectoryChanged,
	eventbus.EventThumbnailResolved,
	eventbus.EventSidebarLoaded,
	eventbus.EventBackendReady,
	eventbus.EventBackendFailed,
	eventbus.EventFileOpened,
	eventbus.EventError,
	eventbus.EventFavoritesChanged,
}

// Run wires the providers to the bus and runs the UI until it quits
func Run(ctx context.Context, s Settings) error {
	log := logrus.WithField("component", "cli")

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.NewWithLogger(logrus.StandardLogger())
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(s.ConfigPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.WithError(err).Warn("could not load config, using defaults")
		cfg = config.DefaultConfig()
	}
	// A location from the command line is not remembered
	configured := cfg.StartLocation
	save := func() error {
		out := *cfg
		out.StartLocation = configured
		return configSvc.SaveToPath(&out, configSvc.Path())
	}
	if s.Location != "" {
		location, err := resolveLocation(s.Location)
		if err != nil {
			return err
		}
		cfg.StartLocation = location
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = string(filepath.Separator)
	}

	// Providers
	favorites := sidebar.NewFavorites(bus, cfg.Favorites)
	side := sidebar.NewProvider(home, favorites)
	defer side.Attach(bus)()

	lister := listing.NewService(bus, listing.NewFileLister(side))
	defer lister.Stop()

	gen := thumbgen.New(thumbgen.Options{
		CacheDir: cfg.Thumbnails.CacheDir,
		MaxSize:  cfg.Thumbnails.MaxSize,
		Workers:  cfg.Thumbnails.Workers,
	})
	defer gen.Attach(bus)()
	cache := thumbnails.NewCache(gen,
		thumbnails.WithInterval(cfg.Thumbnails.PollInterval()),
		thumbnails.WithMaxRetries(cfg.Thumbnails.MaxRetries),
	)

	if w, err := watch.New(bus, watch.DefaultDebounce); err != nil {
		log.WithError(err).Warn("directory watching disabled")
	} else {
		defer w.Close()
	}

	files := opener.NewService(bus, opener.New())

	// Persist favourites as they change
	defer bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.Favorites = event.Favorites
		if err := save(); err != nil {
			log.WithError(err).Error("failed to save config")
		}
	})()

	defer bus.Subscribe(eventbus.EventBackendReady, func(eventbus.DomainEvent) {
		side.Publish(ctx, bus)
	})()

	model := ui.NewModel(ui.Options{
		Bus:         bus,
		Config:      cfg,
		Thumbnails:  cache,
		Opener:      files,
		Favorites:   favorites,
		Home:        home,
		ReadyMarker: s.ReadyMarker,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if !s.ReadyMarker {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Forward domain events to the UI
	for _, t := range uiEvents {
		defer bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})()
	}

	checker := backend.NewChecker(cfg.Startup.ConnectRetries, cfg.Startup.ConnectDelay(),
		backend.WritableDir(cfg.Thumbnails.CacheDir),
		backend.ReadableDir(startDir(cfg.StartLocation, home)),
	)
	checker.Start(ctx, bus)

	log.WithField("location", cfg.StartLocation).Info("starting UI")
	_, runErr := p.Run()
	model.Close()
	cache.Wait()

	if err := save(); err != nil {
		log.WithError(err).Warn("failed to save config")
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", runErr)
	}
	log.Info("UI exited normally")
	return nil
}

// resolveLocation makes a command line location absolute. Virtual
// locations are taken as they are.
func resolveLocation(arg string) (string, error) {
	if domain.IsVirtual(arg) {
		return arg, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("error resolving path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", arg, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", arg)
	}
	return abs, nil
}

// startDir is the directory the startup check must be able to read
func startDir(location, home string) string {
	if p := domain.ResolvePath(location); p != "" {
		return p
	}
	return home
}
