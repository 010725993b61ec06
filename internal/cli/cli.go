// Package cli is the filegrip command line: flag parsing, logging setup and
// the wiring of providers around the terminal UI.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// E2EEnv switches the UI into the mode the end-to-end tests drive: no
// alternate screen and a ready marker once the first listing shows
const E2EEnv = "FILEGRIP_E2E_TEST"

type options struct {
	configPath string
	logFile    string
	logLevel   string
}

// NewRootCommand builds the filegrip command
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "filegrip [location]",
		Short:   "A tabbed file browser for the terminal",
		Long:    `Filegrip browses folders in tabs, with grid, list and masonry views, grouping, search and mouse selection.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := ""
			if len(args) > 0 {
				location = args[0]
			}
			closer, err := setupLogging(opts.logFile, opts.logLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			return Run(cmd.Context(), Settings{
				ConfigPath:  opts.configPath,
				Location:    location,
				ReadyMarker: os.Getenv(E2EEnv) == "1",
			})
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (defaults to the user config dir)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", defaultLogFile(), "Log file, empty to disable logging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "filegrip.log")
	}
	return filepath.Join(dir, "filegrip", "filegrip.log")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging sends logrus output to path. The terminal belongs to the UI,
// so nothing is ever logged to stderr.
func setupLogging(path, level string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if path == "" {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}
