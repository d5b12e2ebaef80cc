// Package testutil provides helpers for tests that start from inline HCL
// matrix sources instead of files on disk.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/travisgen/internal/emit"
	"github.com/vk/travisgen/internal/hclconfig"
	"github.com/vk/travisgen/internal/model"
	"github.com/vk/travisgen/internal/render"
)

// WriteMatrixFile writes an inline HCL source to a temp file and returns its
// path. The file is cleaned up with the test.
func WriteMatrixFile(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.hcl")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

// LoadMatrixString parses an inline HCL matrix source into a configuration.
func LoadMatrixString(t *testing.T, source string) (*model.BuildMatrixConfig, error) {
	t.Helper()
	path := WriteMatrixFile(t, source)
	return hclconfig.NewLoader().LoadFile(context.Background(), path)
}

// GenerateString runs the full load → render → emit translation over an
// inline HCL matrix source and returns the pipeline text.
func GenerateString(t *testing.T, source string) (string, error) {
	t.Helper()
	cfg, err := LoadMatrixString(t, source)
	if err != nil {
		return "", err
	}
	descriptor, err := render.Render(cfg)
	if err != nil {
		return "", err
	}
	text, err := emit.Emit(descriptor)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
