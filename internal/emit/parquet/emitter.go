// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package parquet emits the columnar message schema (parquet DDL).
package parquet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DoumanAsh/shema/internal/emit"
	"github.com/DoumanAsh/shema/internal/record"
)

const tab = "  "

func init() {
	emit.Register(&Emitter{})
}

// Emitter derives the parquet message schema for the stored row payload.
type Emitter struct{}

// Name returns the format identifier.
func (e *Emitter) Name() string {
	return "parquet-schema"
}

// FileExtension returns the output file extension.
func (e *Emitter) FileExtension() string {
	return ".parquet.txt"
}

// Emit writes the message schema for table to w. Plain index fields are
// partition-path metadata and are not part of the stored payload, so they
// never appear here.
func (e *Emitter) Emit(table *record.Table, w io.Writer) error {
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out, "message %s {\n", table.TableName()); err != nil {
		return err
	}

	for _, field := range table.PayloadFields() {
		repetition := "REQUIRED"
		if field.Flags.Has(record.Optional) {
			repetition = "OPTIONAL"
		}

		annotation := ""
		if PhysicalType(field.Type) == "BYTE_ARRAY" && IsUTF8(field.Type) {
			annotation = " (UTF8)"
		}

		_, err := fmt.Fprintf(out, "%s%s %s %s%s;\n", tab, repetition, PhysicalType(field.Type), field.Name, annotation)
		if err != nil {
			return err
		}
	}

	if _, err := out.WriteString("}"); err != nil {
		return err
	}
	return out.Flush()
}

// Text derives the message schema as a string.
func Text(table *record.Table) (string, error) {
	var sb strings.Builder
	if err := (&Emitter{}).Emit(table, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
