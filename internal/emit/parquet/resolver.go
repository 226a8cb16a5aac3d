// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package parquet

import "github.com/DoumanAsh/shema/internal/record"

// PhysicalType maps a model type to its parquet physical type.
func PhysicalType(t record.Type) string {
	switch t {
	case record.Byte, record.Short, record.Integer:
		return "INT32"
	case record.Long:
		return "INT64"
	case record.Float:
		return "FLOAT"
	case record.Double:
		return "DOUBLE"
	case record.Boolean:
		return "BOOLEAN"
	case record.TimestampZ:
		// Firehose's Hive deserializer expects the legacy 96-bit
		// Julian-day timestamp, not a 64-bit logical one.
		return "INT96"
	default:
		// String and the opaque types are stored as byte arrays.
		return "BYTE_ARRAY"
	}
}

// IsUTF8 reports whether the BYTE_ARRAY column carries text and gets the
// UTF8 annotation. All text-bearing types qualify, including Enum.
func IsUTF8(t record.Type) bool {
	switch t {
	case record.String, record.Array, record.Object, record.Enum:
		return true
	default:
		return false
	}
}
