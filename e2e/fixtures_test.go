//go:build e2e && unix

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// FileOption configures a fixture file
type FileOption func(*fileOptions)

type fileOptions struct {
	contents string
	modified time.Time
}

// WithContents sets the bytes written to the file
func WithContents(contents string) FileOption {
	return func(opts *fileOptions) {
		opts.contents = contents
	}
}

// WithModTime backdates the file
func WithModTime(t time.Time) FileOption {
	return func(opts *fileOptions) {
		opts.modified = t
	}
}

// CreateTestWorkspace creates a folder to browse and an isolated home
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	tf.home = tf.t.TempDir()
	return tf.workspace, nil
}

// CreateFile writes a file below the workspace and returns its path
func (tf *TUITestFramework) CreateFile(name string, options ...FileOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	opts := &fileOptions{contents: name}
	for _, opt := range options {
		opt(opts)
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create parent: %w", err)
	}
	if err := os.WriteFile(path, []byte(opts.contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if !opts.modified.IsZero() {
		if err := os.Chtimes(path, opts.modified, opts.modified); err != nil {
			return "", fmt.Errorf("failed to set times: %w", err)
		}
	}
	return path, nil
}

// CreateDir makes a folder below the workspace
func (tf *TUITestFramework) CreateDir(name string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	return path, nil
}

// CreateImage writes a small gradient PNG below the workspace
func (tf *TUITestFramework) CreateImage(name string, w, h int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}

	path := filepath.Join(tf.workspace, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return path, nil
}

// CreateFiles writes several files with default contents
func (tf *TUITestFramework) CreateFiles(names ...string) error {
	for _, name := range names {
		if _, err := tf.CreateFile(name); err != nil {
			return err
		}
	}
	return nil
}
