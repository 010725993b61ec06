// Package backend runs the startup connectivity check. The browser is only
// usable once its collaborators answer; otherwise the UI shows a persistent error.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"filegrip/internal/eventbus"
)

// ErrBackendUnavailable is returned when every connection attempt failed
var ErrBackendUnavailable = errors.New("backend failed to start")

// FailureMessage is shown to the user when the backend never came up
const FailureMessage = "Backend failed to start"

// Probe checks one collaborator
type Probe func(ctx context.Context) error

// ReadableDir checks that a directory can be listed
func ReadableDir(path string) Probe {
	return func(ctx context.Context) error {
		if path == "" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return nil
	}
}

// WritableDir checks that a directory exists or can be created, and accepts files
func WritableDir(path string) Probe {
	return func(ctx context.Context) error {
		if path == "" {
			return nil
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		f, err := os.CreateTemp(path, ".probe-*")
		if err != nil {
			return fmt.Errorf("failed to write to %s: %w", path, err)
		}
		name := f.Name()
		f.Close()
		return os.Remove(name)
	}
}

// Checker retries a set of probes until they all pass
type Checker struct {
	probes  []Probe
	retries int
	delay   time.Duration
	sleep   func(ctx context.Context, d time.Duration) error
	log     logrus.FieldLogger
}

// NewChecker creates a checker making at most retries attempts, delay apart
func NewChecker(retries int, delay time.Duration, probes ...Probe) *Checker {
	if retries < 1 {
		retries = 1
	}
	return &Checker{
		probes:  probes,
		retries: retries,
		delay:   delay,
		sleep:   sleepContext,
		log:     logrus.WithField("component", "backend"),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Connect runs the probes until one attempt passes them all
func (c *Checker) Connect(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if lastErr = c.attempt(ctx); lastErr == nil {
			c.log.WithField("attempt", attempt).Info("backend ready")
			return nil
		}
		c.log.WithError(lastErr).WithField("attempt", attempt).Warn("backend not reachable")

		if attempt < c.retries {
			if err := c.sleep(ctx, c.delay); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrBackendUnavailable, c.retries, lastErr)
}

func (c *Checker) attempt(ctx context.Context) error {
	for _, probe := range c.probes {
		if err := probe(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Start connects in the background and publishes BackendReady or BackendFailed
func (c *Checker) Start(ctx context.Context, bus eventbus.EventBus) {
	go func() {
		if err := c.Connect(ctx); err != nil {
			bus.Publish(eventbus.BackendFailedEvent{Message: FailureMessage, Err: err})
			return
		}
		bus.Publish(eventbus.BackendReadyEvent{})
	}()
}
