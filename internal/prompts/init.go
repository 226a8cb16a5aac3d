// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(definitions, output, recordName *string, createSample *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Record definitions directory").
				Placeholder("records").
				Validate(requiredValidator("definitions directory")).
				Value(definitions),
			huh.NewInput().
				Title("Output directory").
				Placeholder("schemas").
				Value(output),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Starter definition").
				Options(
					huh.NewOption("Create a sample record definition", true),
					huh.NewOption("Start empty", false),
				).
				Height(3).
				Value(createSample),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Record name").
				Placeholder("AnalyticsEvent").
				Validate(identifierValidator).
				Value(recordName),
		).WithHideFunc(func() bool { return !*createSample }),
	).WithTheme(Theme()).Run()
}

// RunGenerateSelect prompts for a record and output format when the
// generate command is invoked without flags.
func RunGenerateSelect(recordValue, formatValue *string, records, formats []string) error {
	recordOptions := make([]huh.Option[string], 0, len(records)+1)
	recordOptions = append(recordOptions, huh.NewOption("All records", ""))
	for _, r := range records {
		recordOptions = append(recordOptions, huh.NewOption(r, r))
	}

	formatOptions := make([]huh.Option[string], 0, len(formats)+1)
	formatOptions = append(formatOptions, huh.NewOption("Requested outputs", ""))
	for _, f := range formats {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Record").
				Options(recordOptions...).
				Value(recordValue),
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(formatValue),
		),
	).WithTheme(Theme()).Run()
}
