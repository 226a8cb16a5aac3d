// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DoumanAsh/shema/internal/config"
	"github.com/DoumanAsh/shema/internal/record"
)

var (
	// ErrNotInitialized indicates no shema.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a shema project (shema.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDefinitionsNotFound indicates the definitions directory doesn't exist.
	ErrDefinitionsNotFound = errors.New("definitions directory not found")

	// ErrInvalidDefinition indicates a record definition couldn't be loaded.
	ErrInvalidDefinition = errors.New("invalid record definition")
)

// ConfigFileName is the name of the shema configuration file.
const ConfigFileName = "shema.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the loaded record
// definitions.
type Context struct {
	Config *config.Config

	// Tables are the validated schema models, one per record definition,
	// ordered by definition file name.
	Tables []*record.Table
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the shema Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	defDir := cfg.Definitions
	if !filepath.IsAbs(defDir) {
		defDir = filepath.Join(cwd, defDir)
	}
	if _, statErr := os.Stat(defDir); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrDefinitionsNotFound, defDir)
	}

	tables, err := record.LoadDir(defDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	shemaCtx := &Context{
		Config: cfg,
		Tables: tables,
	}

	return context.WithValue(ctx, contextKey{}, shemaCtx), nil
}

// From extracts the shema Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if shemaCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return shemaCtx
	}
	return nil
}

// Table returns the loaded table with the given declaration or emitted
// name, or nil.
func (c *Context) Table(name string) *record.Table {
	for _, t := range c.Tables {
		if t.Name == name || t.TableName() == name {
			return t
		}
	}
	return nil
}
