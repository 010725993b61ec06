//go:build e2e && unix

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTabs(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace := startIn(t, tf, func(tf *TUITestFramework) {
		require.NoError(t, tf.CreateFiles("a.txt"))
	})
	title := filepath.Base(workspace)
	require.True(t, tf.SeePlain("1 "+title), "First tab is labelled with the folder")

	require.NoError(t, tf.SendKeys(KeyNewTab))
	require.True(t, tf.SeePlain("2 "+title), "t opens a second tab on the same folder")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startIn(t, tf, nil)

	require.NoError(t, tf.SendKeys("?"))
	require.True(t, tf.SeePlain("Alt+drag"), "Help lists the lasso gesture")

	tf.Mark()
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlainAfterMark("This folder is empty"), "Leaving the pager returns to the browser")

	require.NoError(t, tf.Quit())
	require.True(t, waitExit(t, tf, 1500*time.Millisecond), "Application did not exit")
}
