// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package emit defines the emitter interface all output formats implement.
package emit

import (
	"fmt"
	"io"
	"sort"

	"github.com/DoumanAsh/shema/internal/record"
)

// Emitter derives one output format from a schema model.
type Emitter interface {
	// Name returns the format identifier (e.g. "firehose-schema").
	Name() string

	// FileExtension returns the output file extension (e.g. ".json").
	FileExtension() string

	// Emit writes the derived output for table to w. It performs only
	// sequential writes and flushes any buffering before returning.
	Emit(table *record.Table, w io.Writer) error
}

var emitters = make(map[string]Emitter)

// Register adds an emitter to the registry.
func Register(e Emitter) {
	emitters[e.Name()] = e
}

// Get retrieves an emitter by format name.
func Get(name string) (Emitter, error) {
	e, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return e, nil
}

// Available returns all registered format names, sorted.
func Available() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Requested returns the emitters the table asked for, in registry name order.
func Requested(table *record.Table) ([]Emitter, error) {
	var names []string
	if table.Outputs.FirehoseSchema {
		names = append(names, "firehose-schema")
	}
	if table.Outputs.ParquetSchema {
		names = append(names, "parquet-schema")
	}
	if table.Outputs.PartitionCode {
		names = append(names, "partition-code")
	}
	if table.Outputs.ParquetCode {
		names = append(names, "parquet-code")
	}
	if table.Outputs.JSONSchema {
		names = append(names, "jsonschema")
	}

	out := make([]Emitter, 0, len(names))
	for _, name := range names {
		e, err := Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
