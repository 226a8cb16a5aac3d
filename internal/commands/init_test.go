// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoumanAsh/shema/internal/config"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestInit_NonInteractive(t *testing.T) {
	dir := chdirTemp(t)

	root := NewRootCmd()
	root.SetArgs([]string{"init", "--non-interactive", "--definitions", "records", "--output", "generated"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))

	cfg, err := config.Load(filepath.Join(dir, "shema.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "records", cfg.Definitions)
	assert.Equal(t, "generated", cfg.Output)

	info, err := os.Stat(filepath.Join(dir, "records"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_WithSample(t *testing.T) {
	dir := chdirTemp(t)

	root := NewRootCmd()
	root.SetArgs([]string{"init", "--non-interactive", "--record", "PageView"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))

	raw, err := os.ReadFile(filepath.Join(dir, "records", "sample.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "record: PageView")

	// The sample must load and generate out of the box.
	gen := NewRootCmd()
	gen.SetArgs([]string{"generate", "--all", "--stdout"})
	var out bytes.Buffer
	gen.SetOut(&out)
	require.NoError(t, gen.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "message page_view {")
}

func TestInit_AlreadyInitialized(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shema.yaml"), []byte("version: 1\n"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"init", "--non-interactive"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	require.EqualError(t, err, "shema.yaml already exists; project already initialized")
}
