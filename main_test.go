package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filefinder/internal/config"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0o644))
	return root
}

func lines(s string) []string {
	out := strings.Split(strings.TrimSpace(s), "\n")
	sort.Strings(out)
	return out
}

func TestListAll(t *testing.T) {
	root := makeTree(t)
	var buf bytes.Buffer

	require.NoError(t, runList(&buf, root, "", false))

	sep := string(filepath.Separator)
	assert.Equal(t, []string{"a.txt", "sub" + sep, filepath.Join("sub", "b.txt")}, lines(buf.String()))
}

func TestListQueryAbsolute(t *testing.T) {
	root := makeTree(t)
	var buf bytes.Buffer

	require.NoError(t, runList(&buf, root, "b", true))

	// sub matches b too
	assert.Equal(t, []string{
		filepath.Join(root, "sub") + string(filepath.Separator),
		filepath.Join(root, "sub", "b.txt"),
	}, lines(buf.String()))
}

func TestListRelativeRootPrintsAbsolutePaths(t *testing.T) {
	root := makeTree(t)
	t.Chdir(filepath.Dir(root))
	var buf bytes.Buffer

	require.NoError(t, runList(&buf, filepath.Base(root), "a.txt", true))

	got := lines(buf.String())
	require.Len(t, got, 1)
	assert.True(t, filepath.IsAbs(got[0]), "got %q", got[0])
	assert.True(t, strings.HasSuffix(got[0], filepath.Join(filepath.Base(root), "a.txt")))
}

func TestListRejectsFile(t *testing.T) {
	root := makeTree(t)
	err := runList(&bytes.Buffer{}, filepath.Join(root, "a.txt"), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestListCommandArgs(t *testing.T) {
	root := makeTree(t)
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"list", root, "a.txt"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "a.txt\n", buf.String())
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")
	svc := config.NewConfigService(path, nil)

	got, err := initConfig(svc, false)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = initConfig(svc, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = initConfig(svc, true)
	assert.NoError(t, err)
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	closer := setupLogging(path)
	require.NotNil(t, closer)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		closer.Close()
	})

	assert.FileExists(t, path)
}
