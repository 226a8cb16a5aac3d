// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	// Import emitters to auto-register.
	_ "github.com/DoumanAsh/shema/internal/emit/glue"
	_ "github.com/DoumanAsh/shema/internal/emit/gocode"
	_ "github.com/DoumanAsh/shema/internal/emit/jsonschema"
	_ "github.com/DoumanAsh/shema/internal/emit/parquet"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shema",
		Short: "Derive delivery-stream and columnar schemas from record definitions",
	}

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerFormatsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
