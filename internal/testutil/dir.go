// Package testutil provides reusable test utilities for quickrefs tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// RefDir represents a temporary quick-reference tree for testing.
type RefDir struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewRefDir creates a new reference tree builder.
// Call Build() to create the actual directory.
func NewRefDir(t *testing.T) *RefDir {
	t.Helper()
	return &RefDir{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the tree. The path is relative to the tree root.
func (d *RefDir) WithFile(path, content string) *RefDir {
	d.files[path] = content
	return d
}

// Build creates the directory and all configured files.
// Returns the RefDir for method chaining.
func (d *RefDir) Build() *RefDir {
	d.t.Helper()

	d.Path = d.t.TempDir()
	for path, content := range d.files {
		d.writeFile(path, content)
	}
	return d
}

// Chdir moves the test into the tree root and restores the previous
// working directory when the test finishes.
func (d *RefDir) Chdir() *RefDir {
	d.t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		d.t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(d.Path); err != nil {
		d.t.Fatalf("chdir %s: %v", d.Path, err)
	}
	d.t.Cleanup(func() { _ = os.Chdir(orig) })
	return d
}

func (d *RefDir) writeFile(relPath, content string) {
	d.t.Helper()
	fullPath := filepath.Join(d.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		d.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		d.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
}
