// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package columnar is the runtime contract generated writer code compiles
// against: typed column writers plus the encoding helpers the per-type
// write paths need. Implementations adapt an actual parquet writer; the
// generated code only ever sees these interfaces.
package columnar

// RowGroupWriter hands out column writers in schema order.
type RowGroupWriter interface {
	// NextColumn returns the writer for the next column of the row group.
	NextColumn() (ColumnWriter, error)
}

// ColumnWriter is the untyped handle returned by NextColumn. Generated
// code asserts it to the typed variant the schema promised and fails with
// a descriptive error when the underlying writer disagrees.
type ColumnWriter interface {
	// PhysicalType returns the column's physical type name, e.g. "INT32".
	PhysicalType() string
}

// Int32ColumnWriter writes INT32 columns.
type Int32ColumnWriter interface {
	ColumnWriter
	WriteBatch(values []int32, defLevels, repLevels []int16) error
}

// Int64ColumnWriter writes INT64 columns.
type Int64ColumnWriter interface {
	ColumnWriter
	WriteBatch(values []int64, defLevels, repLevels []int16) error
}

// FloatColumnWriter writes FLOAT columns.
type FloatColumnWriter interface {
	ColumnWriter
	WriteBatch(values []float32, defLevels, repLevels []int16) error
}

// DoubleColumnWriter writes DOUBLE columns.
type DoubleColumnWriter interface {
	ColumnWriter
	WriteBatch(values []float64, defLevels, repLevels []int16) error
}

// BooleanColumnWriter writes BOOLEAN columns.
type BooleanColumnWriter interface {
	ColumnWriter
	WriteBatch(values []bool, defLevels, repLevels []int16) error
}

// ByteArrayColumnWriter writes BYTE_ARRAY columns.
type ByteArrayColumnWriter interface {
	ColumnWriter
	WriteBatch(values [][]byte, defLevels, repLevels []int16) error
}

// Int96ColumnWriter writes INT96 columns (legacy timestamps).
type Int96ColumnWriter interface {
	ColumnWriter
	WriteBatch(values []Int96, defLevels, repLevels []int16) error
}
