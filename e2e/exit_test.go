//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startIn(t *testing.T, tf *TUITestFramework, setup func(tf *TUITestFramework)) string {
	t.Helper()
	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	if setup != nil {
		setup(tf)
	}

	require.NoError(t, tf.StartApp(workspace), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	return workspace
}

func waitExit(t *testing.T, tf *TUITestFramework, timeout time.Duration) bool {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Logf("Process exited with %v", err)
		}
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startIn(t, tf, func(tf *TUITestFramework) {
		require.NoError(t, tf.CreateFiles("exit.txt"))
	})
	require.True(t, tf.SeePlain("exit.txt"), "Should show the file")

	require.NoError(t, tf.Quit())
	if !waitExit(t, tf, 1500*time.Millisecond) {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit after q")
	}
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startIn(t, tf, nil)
	require.True(t, tf.SeePlain("This folder is empty"), "Should show the empty folder")

	require.NoError(t, tf.SendCtrlC())
	require.True(t, waitExit(t, tf, 1500*time.Millisecond), "Application did not exit after Ctrl+C")
}
