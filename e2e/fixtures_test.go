//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates the temp directory used as $HOME and search root
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "filefinder-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir
	return dir, nil
}

// CreateFile writes a small file at rel inside the workspace
func (tf *TUITestFramework) CreateFile(rel, content string) (string, error) {
	path := filepath.Join(tf.workspace, "tree", rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// TreeRoot returns the directory CreateFile writes into
func (tf *TUITestFramework) TreeRoot() string {
	return filepath.Join(tf.workspace, "tree")
}

// standardTree creates a small mixed tree under TreeRoot
func (tf *TUITestFramework) standardTree() error {
	for rel, content := range map[string]string{
		"a.txt":             "alpha",
		"sub/b.txt":         "beta",
		"sub/deeper/c.log":  "gamma",
		"notes/readme_b.md": "delta",
	} {
		if _, err := tf.CreateFile(rel, content); err != nil {
			return err
		}
	}
	return nil
}
