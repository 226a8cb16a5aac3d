// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package glue

import "github.com/DoumanAsh/shema/internal/record"

// TypeOf maps a model type to its Glue/Hive column type.
// Reference: org.apache.hadoop.hive.metastore.ColumnType.
func TypeOf(t record.Type) string {
	switch t {
	case record.Byte:
		return "tinyint"
	case record.Short:
		return "smallint"
	case record.Integer:
		return "int"
	case record.Long:
		return "bigint"
	case record.Float:
		return "float"
	case record.Double:
		return "double"
	case record.String:
		return "string"
	case record.Boolean:
		return "boolean"
	case record.TimestampZ:
		return "timestamp"
	default:
		// Arrays and objects cross the wire serialized as strings.
		return "string"
	}
}
