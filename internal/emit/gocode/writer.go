// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package gocode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DoumanAsh/shema/internal/emit/parquet"
	"github.com/DoumanAsh/shema/internal/record"
)

// Writer emits the per-record-batch row group writer for a record type.
type Writer struct{}

// Name returns the format identifier.
func (wr *Writer) Name() string {
	return "parquet-code"
}

// FileExtension returns the output file extension.
func (wr *Writer) FileExtension() string {
	return "_parquet.go"
}

// columnPlan collects everything one generated column block needs.
type columnPlan struct {
	field      record.Field
	physical   string // e.g. "INT96"
	iface      string // columnar writer variant, e.g. "Int96ColumnWriter"
	sliceType  string // values slice element type, e.g. "columnar.Int96"
	valueExpr  string // expression producing one value from records[i]
	nilExpr    string // presence check for optional fields
	marshalled bool   // value goes through json.Marshal
}

// Emit writes the row group writer source for table to w.
//
// One block per payload column, schema order: fetch the next column
// writer, assert its variant against the schema's physical type, project
// the values (definition levels only for optional fields) and hand both
// to WriteBatch. The parquet schema text constant is derived by the same
// DDL emitter that produces the standalone schema output, and the schema
// accessor parses it back.
func (wr *Writer) Emit(table *record.Table, w io.Writer) error {
	ddl, err := parquet.Text(table)
	if err != nil {
		return err
	}

	plans := make([]columnPlan, 0, len(table.Fields))
	needsJSON := false
	for _, field := range table.PayloadFields() {
		plan, err := planColumn(field)
		if err != nil {
			return err
		}
		if plan.marshalled {
			needsJSON = true
		}
		plans = append(plans, plan)
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by shema. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", table.Package)

	sb.WriteString("import (\n")
	if needsJSON {
		sb.WriteString("\t\"encoding/json\"\n")
	}
	sb.WriteString("\t\"fmt\"\n\n")
	sb.WriteString("\t\"github.com/DoumanAsh/shema/columnar\"\n")
	sb.WriteString("\t\"github.com/fraugster/parquet-go/parquetschema\"\n")
	sb.WriteString(")\n\n")

	fmt.Fprintf(&sb, "// %sParquetSchemaText is the parquet message schema %s row groups\n// are written with.\n", table.Name, table.Name)
	fmt.Fprintf(&sb, "const %sParquetSchemaText = `%s`\n\n", table.Name, ddl)

	fmt.Fprintf(&sb, "// %sParquetSchema parses the message schema.\n", table.Name)
	fmt.Fprintf(&sb, "func %sParquetSchema() (*parquetschema.SchemaDefinition, error) {\n", table.Name)
	fmt.Fprintf(&sb, "\treturn columnar.ParseSchema(%sParquetSchemaText)\n", table.Name)
	sb.WriteString("}\n\n")

	fmt.Fprintf(&sb, "// Write%sRowGroup writes records into rg, one column batch per\n// payload field in schema order.\n", table.Name)
	fmt.Fprintf(&sb, "func Write%sRowGroup(records []%s, rg columnar.RowGroupWriter) error {\n", table.Name, table.Name)

	for _, plan := range plans {
		writeColumnBlock(&sb, plan)
	}

	sb.WriteString("\treturn nil\n")
	sb.WriteString("}\n")

	out := bufio.NewWriter(w)
	if _, err := out.WriteString(sb.String()); err != nil {
		return err
	}
	return out.Flush()
}

func planColumn(field record.Field) (columnPlan, error) {
	plan := columnPlan{
		field:    field,
		physical: parquet.PhysicalType(field.Type),
	}

	src := "records[i]." + field.OriginalName
	if field.Flags.Has(record.Optional) {
		plan.nilExpr = src + " == nil"
		src = "(*" + src + ")"
	}

	switch field.Type {
	case record.Byte, record.Short, record.Integer:
		plan.iface = "Int32ColumnWriter"
		plan.sliceType = "int32"
		plan.valueExpr = "int32(" + src + ")"
	case record.Long:
		plan.iface = "Int64ColumnWriter"
		plan.sliceType = "int64"
		plan.valueExpr = "int64(" + src + ")"
	case record.Float:
		plan.iface = "FloatColumnWriter"
		plan.sliceType = "float32"
		plan.valueExpr = src
	case record.Double:
		plan.iface = "DoubleColumnWriter"
		plan.sliceType = "float64"
		plan.valueExpr = src
	case record.Boolean:
		plan.iface = "BooleanColumnWriter"
		plan.sliceType = "bool"
		plan.valueExpr = src
	case record.String:
		plan.iface = "ByteArrayColumnWriter"
		plan.sliceType = "[]byte"
		plan.valueExpr = "[]byte(" + src + ")"
	case record.TimestampZ:
		plan.iface = "Int96ColumnWriter"
		plan.sliceType = "columnar.Int96"
		plan.valueExpr = "columnar.TimestampInt96(" + src + ")"
	case record.Array, record.Object, record.Enum:
		plan.iface = "ByteArrayColumnWriter"
		plan.sliceType = "[]byte"
		plan.valueExpr = src
		plan.marshalled = true
	default:
		return columnPlan{}, fmt.Errorf("no columnar writer for type %s", field.Type)
	}
	return plan, nil
}

func writeColumnBlock(sb *strings.Builder, plan columnPlan) {
	name := plan.field.Name
	optional := plan.field.Flags.Has(record.Optional)

	fmt.Fprintf(sb, "\t{ // %s: %s\n", name, plan.physical)
	sb.WriteString("\t\tcol, err := rg.NextColumn()\n")
	sb.WriteString("\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
	fmt.Fprintf(sb, "\t\tw, ok := col.(columnar.%s)\n", plan.iface)
	sb.WriteString("\t\tif !ok {\n")
	fmt.Fprintf(sb, "\t\t\treturn fmt.Errorf(\"column %%q: expected %s writer, got %%s\", %q, col.PhysicalType())\n", plan.physical, name)
	sb.WriteString("\t\t}\n")

	if optional {
		sb.WriteString("\t\tdefLevels := make([]int16, 0, len(records))\n")
	}
	fmt.Fprintf(sb, "\t\tvalues := make([]%s, 0, len(records))\n", plan.sliceType)
	sb.WriteString("\t\tfor i := range records {\n")

	if optional {
		fmt.Fprintf(sb, "\t\t\tif %s {\n", plan.nilExpr)
		sb.WriteString("\t\t\t\tdefLevels = append(defLevels, 0)\n")
		sb.WriteString("\t\t\t\tcontinue\n")
		sb.WriteString("\t\t\t}\n")
		sb.WriteString("\t\t\tdefLevels = append(defLevels, 1)\n")
	}

	if plan.marshalled {
		fmt.Fprintf(sb, "\t\t\traw, err := json.Marshal(%s)\n", plan.valueExpr)
		sb.WriteString("\t\t\tif err != nil {\n")
		fmt.Fprintf(sb, "\t\t\t\treturn fmt.Errorf(\"column %%q: record %%d: %%w\", %q, i, err)\n", name)
		sb.WriteString("\t\t\t}\n")
		sb.WriteString("\t\t\tvalues = append(values, raw)\n")
	} else {
		fmt.Fprintf(sb, "\t\t\tvalues = append(values, %s)\n", plan.valueExpr)
	}

	sb.WriteString("\t\t}\n")

	levels := "nil"
	if optional {
		levels = "defLevels"
	}
	fmt.Fprintf(sb, "\t\tif err := w.WriteBatch(values, %s, nil); err != nil {\n", levels)
	fmt.Fprintf(sb, "\t\t\treturn fmt.Errorf(\"column %%q: %%w\", %q, err)\n", name)
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t}\n")
}
