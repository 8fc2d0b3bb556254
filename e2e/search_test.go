//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWithTree(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.standardTree())

	require.NoError(t, tf.StartApp(tf.TreeRoot()))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("filefinder"), "Should show title")
	return tf
}

func TestNoFolderDisablesSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("No folder selected"))

	require.NoError(t, tf.Enter())
	assert.True(t, tf.SeePlain("Select a folder first"), "search should be disabled without a root")
}

func TestEmptyQueryListsWholeTree(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)

	require.NoError(t, tf.Enter())

	for _, want := range []string{"a.txt", "sub/b.txt", "sub/deeper/c.log", "notes/readme_b.md", "sub/deeper/"} {
		assert.True(t, tf.SeePlain(want), "expected %s in results", want)
	}
	assert.True(t, tf.SeePlain("matches"))
}

func TestQueryFiltersByName(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)

	require.NoError(t, tf.Search("b"))

	// Directory names count too: sub, b.txt and readme_b.md
	require.True(t, tf.SeePlain("3 matches"))
	assert.True(t, tf.SeePlain("sub/b.txt"))
	assert.True(t, tf.SeePlain("notes/readme_b.md"))
}

func TestQueryIsCaseSensitive(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)

	require.NoError(t, tf.Search("A.TXT"))

	assert.True(t, tf.SeePlain("No matches"))
}

func TestNarrowDoesNotRescan(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("a.txt"))

	require.NoError(t, tf.SendKeys(KeyNarrow))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys("clog"))
	require.NoError(t, tf.Enter())

	assert.True(t, tf.SeePlain("[Narrow: clog"), "narrow indicator should show")
}

func TestDeleteRemovesFileWithoutRefresh(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)
	target := filepath.Join(tf.TreeRoot(), "a.txt")

	require.NoError(t, tf.Search("a.txt"))
	require.True(t, tf.SeePlain("1 match"))

	require.NoError(t, tf.SendKeys(KeyDelete))
	require.True(t, tf.SeePlain("search again to refresh"))

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err), "file should be gone from disk")

	require.NoError(t, tf.SendKeys("r"))
	assert.True(t, tf.SeePlain("No matches"), "a fresh search no longer lists the file")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := startWithTree(t)

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("filefinder help"))
	assert.True(t, tf.SeePlain("open containing folder"))

	assert.True(t, tf.SeePlain("Press ? or esc to close"))
}
