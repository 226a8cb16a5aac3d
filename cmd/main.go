// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package main is the entry point for the shema CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DoumanAsh/shema/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
