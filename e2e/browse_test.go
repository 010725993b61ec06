//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShowsFolderContents(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace := startIn(t, tf, func(tf *TUITestFramework) {
		require.NoError(t, tf.CreateFiles("alpha.txt", "beta.txt", ".hidden"))
		_, err := tf.CreateDir("docs")
		require.NoError(t, err)
	})

	require.True(t, tf.SeePlain(workspace), "Should show the location")
	require.True(t, tf.SeePlain("alpha.txt"), "Should show alpha.txt")
	require.True(t, tf.SeePlain("beta.txt"), "Should show beta.txt")
	require.True(t, tf.SeePlain("docs"), "Should show the folder")
	require.False(t, tf.OutputContainsPlain(".hidden", 300*time.Millisecond), "Hidden files stay hidden")

	require.NoError(t, tf.SendKeys("."))
	require.True(t, tf.SeePlain(".hidden"), "Dot toggles hidden files")
}

func TestEnterOpensFolderAndUpReturns(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startIn(t, tf, func(tf *TUITestFramework) {
		_, err := tf.CreateFile("docs/inner.txt")
		require.NoError(t, err)
		require.NoError(t, tf.CreateFiles("top.txt"))
	})
	require.True(t, tf.SeePlain("2 items"), "Should show the folder and the file")

	// docs sorts ahead of top.txt, so the cursor starts on it
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("inner.txt"), "Enter should open the folder")

	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyParent))
	require.True(t, tf.SeePlainAfterMark("2 items"), "Parent lists the folder again")
}

func TestCycleView(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startIn(t, tf, func(tf *TUITestFramework) {
		require.NoError(t, tf.CreateFiles("a.txt"))
		_, err := tf.CreateImage("picture.png", 64, 48)
		require.NoError(t, err)
	})
	require.True(t, tf.SeePlain("· grid ·"), "Starts in grid view")

	require.NoError(t, tf.SendKeys("v"))
	require.True(t, tf.SeePlain("list view"), "v switches to list")
	require.NoError(t, tf.SendKeys("v"))
	require.True(t, tf.SeePlain("masonry view"), "v switches to masonry")
}
