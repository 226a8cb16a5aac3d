// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package record holds the canonical schema model every emitter derives from.
package record

import (
	"fmt"

	"github.com/DoumanAsh/shema/internal/casing"
)

// Type is the closed set of field types the emitters know how to map.
type Type int

const (
	Byte Type = iota
	Short
	Integer
	Long
	Float
	Double
	String
	Boolean
	TimestampZ
	// Array, Object and Enum have no flat representation; every target
	// serializes them as strings.
	Array
	Object
	Enum
)

// String returns the type name for error messages.
func (t Type) String() string {
	switch t {
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Integer:
		return "integer"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case TimestampZ:
		return "timestampz"
	case Array:
		return "array"
	case Object:
		return "object"
	case Enum:
		return "enum"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// IsOpaque reports whether the type crosses every wire as a serialized string.
func (t Type) IsOpaque() bool {
	return t == Array || t == Object || t == Enum
}

// Flags is a bitset of independent per-field facets.
type Flags uint8

const (
	// Optional marks a field whose value may be absent.
	Optional Flags = 1 << iota
	// Index marks a partition/index key.
	Index
	// DateIndex marks the single timestamp field decomposed into
	// year/month/day partition components.
	DateIndex
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Field is one column of the schema model.
type Field struct {
	// Name is the emitted name, used in every output.
	Name string
	// OriginalName is the declaration-time identifier; generated code
	// reads the source record through it.
	OriginalName string
	// OriginalType is the declared type spelling, used verbatim in
	// generated signatures.
	OriginalType string
	Type         Type
	Flags        Flags
	// Doc becomes the comment attached to emitted columns.
	Doc string
}

// Outputs is the set of requested derivations.
type Outputs struct {
	FirehoseSchema bool
	ParquetSchema  bool
	PartitionCode  bool
	ParquetCode    bool
	JSONSchema     bool
}

// Table is one record type handed to the emitters. It is treated as
// immutable after Validate; emitters only derive text from it.
type Table struct {
	// Name is the declaration identifier; emitted outputs use TableName.
	Name string
	// Package is the Go package generated source belongs to (the package
	// declaring the record struct).
	Package string
	Fields  []Field
	Outputs Outputs
}

// TableName returns the case-converted name used in emitted outputs.
func (t *Table) TableName() string {
	return casing.LowerSnake(t.Name)
}

// DateIndexField returns the field carrying DateIndex, or nil.
func (t *Table) DateIndexField() *Field {
	for i := range t.Fields {
		if t.Fields[i].Flags.Has(DateIndex) {
			return &t.Fields[i]
		}
	}
	return nil
}

// PayloadFields returns the fields that belong to the stored row payload:
// everything except plain index keys, which only exist as partition-path
// metadata. The date index field stays in the payload so its raw value
// remains queryable.
func (t *Table) PayloadFields() []Field {
	out := make([]Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Flags.Has(Index) && !f.Flags.Has(DateIndex) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// IndexFields returns fields carrying Index but not DateIndex, in
// declaration order. These become partition keys after year/month/day.
func (t *Table) IndexFields() []Field {
	out := make([]Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Flags.Has(Index) && !f.Flags.Has(DateIndex) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the model invariants. A failing table must not reach any
// emitter; generation never proceeds partially.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: record has no name", ErrInvalidModel)
	}

	var dateIndex string
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w: field %q has no derivable name", ErrInvalidModel, f.OriginalName)
		}
		if f.Flags.Has(DateIndex) {
			if f.Type != TimestampZ {
				return fmt.Errorf("%w: date index field %q must be a timestamp, got %s", ErrInvalidModel, f.Name, f.Type)
			}
			if f.Flags.Has(Optional) {
				// Partition components are derived with calendar
				// accessors; an absent timestamp has none.
				return fmt.Errorf("%w: date index field %q cannot be optional", ErrInvalidModel, f.Name)
			}
			if dateIndex != "" {
				return fmt.Errorf("%w: date index declared on both %q and %q", ErrInvalidModel, dateIndex, f.Name)
			}
			dateIndex = f.Name
		}
	}
	return nil
}
