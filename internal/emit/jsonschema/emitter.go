// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package jsonschema emits a JSON Schema for the record payload a
// producer serializes onto the delivery stream.
package jsonschema

import (
	"encoding/json"
	"io"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/DoumanAsh/shema/internal/emit"
	"github.com/DoumanAsh/shema/internal/record"
)

func init() {
	emit.Register(&Emitter{})
}

// Emitter derives a validation schema for the serialized record.
type Emitter struct{}

// Name returns the format identifier.
func (e *Emitter) Name() string {
	return "jsonschema"
}

// FileExtension returns the output file extension.
func (e *Emitter) FileExtension() string {
	return ".schema.json"
}

// Emit writes the JSON Schema for table to w. Timestamps are RFC3339
// strings on the wire (the delivery pipeline's expectation) and opaque
// types arrive pre-serialized, so both map to string properties.
func (e *Emitter) Emit(table *record.Table, w io.Writer) error {
	schema := &jsonschema.Schema{
		Type:        "object",
		Description: table.TableName() + " delivery stream record",
		Properties:  make(map[string]*jsonschema.Schema, len(table.Fields)),
	}

	for _, field := range table.Fields {
		schema.Properties[field.Name] = property(field)
		if !field.Flags.Has(record.Optional) {
			schema.Required = append(schema.Required, field.Name)
		}
	}

	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

func property(field record.Field) *jsonschema.Schema {
	prop := &jsonschema.Schema{Description: field.Doc}

	switch field.Type {
	case record.Byte, record.Short, record.Integer, record.Long:
		prop.Type = "integer"
	case record.Float, record.Double:
		prop.Type = "number"
	case record.Boolean:
		prop.Type = "boolean"
	case record.TimestampZ:
		prop.Type = "string"
		prop.Format = "date-time"
	default:
		// String, and the opaque types which cross the wire serialized.
		prop.Type = "string"
	}
	return prop
}
