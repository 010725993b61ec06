// Package opener hands files to the platform's default application
package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"filegrip/internal/eventbus"
)

// Opener performs the platform "open" side effect for a path
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Runner executes a command and returns its combined output
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Command builds the open command for an operating system
func Command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// SystemOpener opens files with the desktop's default handler
type SystemOpener struct {
	goos    string
	run     Runner
	timeout time.Duration
}

// New creates an opener for the running platform
func New() *SystemOpener {
	return &SystemOpener{goos: runtime.GOOS, run: execRunner, timeout: 10 * time.Second}
}

// NewWithRunner creates an opener with a custom command runner
func NewWithRunner(goos string, run Runner) *SystemOpener {
	return &SystemOpener{goos: goos, run: run, timeout: 10 * time.Second}
}

// Open opens path
func (o *SystemOpener) Open(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	name, args := Command(o.goos, path)
	output, err := o.run(ctx, name, args...)
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			return fmt.Errorf("failed to open %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// Service opens files in the background and reports the outcome on the bus
type Service struct {
	bus    eventbus.EventBus
	opener Opener
	log    logrus.FieldLogger
}

// NewService creates an open-file service
func NewService(bus eventbus.EventBus, opener Opener) *Service {
	return &Service{bus: bus, opener: opener, log: logrus.WithField("component", "opener")}
}

// OpenFile opens path without blocking the caller. The result is not
// interpreted beyond logging.
func (s *Service) OpenFile(path string) {
	go func() {
		err := s.opener.Open(context.Background(), path)
		if err != nil {
			s.log.WithError(err).WithField("path", path).Warn("open failed")
		}
		s.bus.Publish(eventbus.FileOpenedEvent{Path: path, Err: err})
	}()
}
