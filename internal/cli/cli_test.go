package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, name := range []string{"config", "log-file", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
	assert.NoError(t, cmd.Args(cmd, []string{"a"}))
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	path := filepath.Join(t.TempDir(), "logs", "filegrip.log")
	closer, err := setupLogging(path, "DEBUG")
	require.NoError(t, err)
	logrus.Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	_, err = setupLogging(path, "loud")
	assert.Error(t, err)

	closer, err = setupLogging("", "info")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestResolveLocation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	got, err := resolveLocation(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	got, err = resolveLocation(domain.TrashLocation)
	require.NoError(t, err)
	assert.Equal(t, domain.TrashLocation, got)

	_, err = resolveLocation(file)
	assert.Error(t, err)
	_, err = resolveLocation(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestStartDir(t *testing.T) {
	assert.Equal(t, "/data", startDir("/data", "/home/me"))
	assert.Equal(t, "/home/me", startDir(domain.HomeLocation, "/home/me"))
}
