// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package columnar

import (
	"fmt"
	"strings"

	"github.com/fraugster/parquet-go/parquetschema"
)

// The emitted schema text uses the parquet-cpp spelling; the parser wants
// the parquet-mr one.
var ddlTokens = map[string]string{
	"REQUIRED":             "required",
	"OPTIONAL":             "optional",
	"REPEATED":             "repeated",
	"BOOLEAN":              "boolean",
	"INT32":                "int32",
	"INT64":                "int64",
	"INT96":                "int96",
	"FLOAT":                "float",
	"DOUBLE":               "double",
	"BYTE_ARRAY":           "binary",
	"FIXED_LEN_BYTE_ARRAY": "fixed_len_byte_array",
}

// ParseSchema parses message-schema text into a schema definition.
// Generated schema accessors route through it so the emitted DDL constant
// stays the single source of truth.
func ParseSchema(ddl string) (*parquetschema.SchemaDefinition, error) {
	def, err := parquetschema.ParseSchemaDefinition(normalizeDDL(ddl))
	if err != nil {
		return nil, fmt.Errorf("invalid parquet schema: %w", err)
	}
	return def, nil
}

// normalizeDDL rewrites the upper-case repetition and physical type names
// to their parquet-mr spelling. Field names are lower_snake and never
// collide with the rewritten tokens.
func normalizeDDL(ddl string) string {
	lines := strings.Split(ddl, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		tokens := strings.Fields(trimmed)
		for j, token := range tokens {
			if repl, ok := ddlTokens[token]; ok {
				tokens[j] = repl
			}
		}
		lines[i] = indent + strings.Join(tokens, " ")
	}
	return strings.Join(lines, "\n")
}
