// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DoumanAsh/shema/internal/config"
	"github.com/DoumanAsh/shema/internal/prompts"
	"github.com/DoumanAsh/shema/internal/session"
)

type initOptions struct {
	definitions    string
	output         string
	recordName     string
	createSample   bool
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new shema project",
		Long: `Initialize a new shema project with a shema.yaml configuration file
and a directory for record definitions.`,
		Example: `  # Interactive mode
  shema init

  # Non-interactive
  shema init --definitions records --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.definitions, "definitions", "d", "records", "Directory for record definition files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "schemas", "Directory for generated artifacts")
	cmd.Flags().StringVarP(&opts.recordName, "record", "r", "", "Create a starter definition with this record name")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("shema.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		opts.createSample = opts.recordName != ""
		if err := prompts.RunInitForm(
			&opts.definitions,
			&opts.output,
			&opts.recordName,
			&opts.createSample,
		); err != nil {
			return err
		}
	} else if opts.recordName != "" {
		opts.createSample = true
	}

	cfg := config.Config{
		Version:     config.CurrentConfigVersion,
		Definitions: opts.definitions,
		Output:      opts.output,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	defDir := opts.definitions
	if !filepath.IsAbs(defDir) {
		defDir = filepath.Join(cwd, defDir)
	}
	if err := os.MkdirAll(defDir, 0o755); err != nil {
		return fmt.Errorf("failed to create definitions directory: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write shema.yaml: %w", err)
	}

	results := []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Definitions", Value: opts.definitions},
		{Label: "Output", Value: opts.output},
	}

	if opts.createSample {
		samplePath := filepath.Join(defDir, "sample.yaml")
		if err := os.WriteFile(samplePath, sampleDefinition(opts.recordName), 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("failed to write sample definition: %w", err)
		}
		results = append(results, prompts.ResultField{Label: "Sample", Value: samplePath})
	}

	prompts.PrintResult(results, "Initialization completed")
	return nil
}

func sampleDefinition(name string) []byte {
	if name == "" {
		name = "AnalyticsEvent"
	}
	return []byte(fmt.Sprintf(`record: %s
package: schemas
outputs:
  - firehose-schema
  - parquet-schema
fields:
  - field: ClientID
    type: string
    index: true
    doc: Index key will go into the delivery stream's partition_keys
  - field: ClientTime
    type: time.Time
    index: true
    dateIndex: true
    doc: Decomposed into year, month and day partitions
  - field: Name
    type: string
`, name))
}
