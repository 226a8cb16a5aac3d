// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DoumanAsh/shema/internal/emit"
	"github.com/DoumanAsh/shema/internal/prompts"
	"github.com/DoumanAsh/shema/internal/record"
	"github.com/DoumanAsh/shema/internal/session"
)

type generateOptions struct {
	record string
	format string
	output string
	all    bool
	stdout bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate schema artifacts from record definitions",
		Long: fmt.Sprintf(`Generate the requested schema artifacts for record definitions.

Available formats: %s`, strings.Join(emit.Available(), ", ")),
		Example: `  # Interactive mode
  shema generate

  # Generate everything each record requested
  shema generate --all

  # One record, one format
  shema generate --record AnalyticsEvent --format firehose-schema

  # Stream to stdout instead of files
  shema generate --all --stdout`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.record, "record", "r", "", "Record name (declaration or table form)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s); default: the record's requested outputs", strings.Join(emit.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate for all records")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write generated text to stdout")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	if len(ctx.Tables) == 0 {
		return fmt.Errorf("no record definitions found in %s", ctx.Config.Definitions)
	}

	if !opts.all && opts.record == "" {
		names := make([]string, 0, len(ctx.Tables))
		for _, t := range ctx.Tables {
			names = append(names, t.Name)
		}
		if err := prompts.RunGenerateSelect(&opts.record, &opts.format, names, emit.Available()); err != nil {
			return err
		}
	}

	tables := ctx.Tables
	if opts.record != "" {
		table := ctx.Table(opts.record)
		if table == nil {
			return fmt.Errorf("unknown record: %s", opts.record)
		}
		tables = []*record.Table{table}
	}

	outputDir := opts.output
	if outputDir == "" {
		outputDir = ctx.Config.Output
	}
	if !opts.stdout {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var results []prompts.ResultField
	for _, table := range tables {
		emitters, err := selectEmitters(table, opts.format)
		if err != nil {
			return err
		}

		for _, e := range emitters {
			name := table.TableName() + e.FileExtension()
			if opts.stdout {
				fmt.Fprintf(cmd.OutOrStdout(), "==> %s\n", name)
				if err := e.Emit(table, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("%s: %s: %w", table.Name, e.Name(), err)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				continue
			}

			if err := emitFile(table, e, filepath.Join(outputDir, name)); err != nil {
				return err
			}
			results = append(results, prompts.ResultField{Label: e.Name(), Value: filepath.Join(outputDir, name)})
		}
	}

	if !opts.stdout {
		prompts.PrintResult(results, "Generation completed")
	}
	return nil
}

// selectEmitters resolves the emitters to run for a table: the explicit
// --format when given, otherwise what the definition requested.
func selectEmitters(table *record.Table, format string) ([]emit.Emitter, error) {
	if format != "" {
		e, err := emit.Get(format)
		if err != nil {
			return nil, err
		}
		return []emit.Emitter{e}, nil
	}
	return emit.Requested(table)
}

func emitFile(table *record.Table, e emit.Emitter, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is derived from config
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name(), err)
	}

	if err := e.Emit(table, f); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("%s: %s: %w", table.Name, e.Name(), err)
	}
	return f.Close()
}
