// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DoumanAsh/shema/internal/emit"
)

func registerFormatsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
			for _, name := range emit.Available() {
				e, err := emit.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", accent.Render(name), e.FileExtension())
			}
			return nil
		},
	}

	parent.AddCommand(cmd)
}
