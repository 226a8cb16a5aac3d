// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package gocode emits Go source for partition access and row-group
// writing against the columnar runtime contract.
package gocode

import (
	"bufio"
	"embed"
	"io"
	"strings"
	"text/template"

	"github.com/DoumanAsh/shema/internal/emit"
	"github.com/DoumanAsh/shema/internal/record"
)

//go:embed accessor.go.tmpl
var accessorFS embed.FS

var accessorTmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"lowerFirst": lowerFirst,
}).ParseFS(accessorFS, "accessor.go.tmpl"))

func init() {
	emit.Register(&Accessor{})
	emit.Register(&Writer{})
}

// Accessor emits partition-key accessors and the path-prefix formatter
// for a record type.
type Accessor struct{}

// Name returns the format identifier.
func (a *Accessor) Name() string {
	return "partition-code"
}

// FileExtension returns the output file extension.
func (a *Accessor) FileExtension() string {
	return "_partition.go"
}

// partitionKey is one non-date partition key in the accessor template.
type partitionKey struct {
	Name      string // emitted name, used in the path prefix
	FieldName string // Go field on the record struct
	Type      string // declared type spelling
	RefType   string // pointer form for the Ref variant
	RefExpr   string // expression producing the RefType value
}

// accessorData is the accessor template input.
type accessorData struct {
	Package string
	Record  string
	// DateField is the Go field holding the partition timestamp; empty
	// when the schema has no date index.
	DateField string
	Keys      []partitionKey
}

// Emit writes the partition accessor source for table to w.
func (a *Accessor) Emit(table *record.Table, w io.Writer) error {
	data := accessorData{
		Package: table.Package,
		Record:  table.Name,
	}
	if date := table.DateIndexField(); date != nil {
		data.DateField = date.OriginalName
	}

	for _, f := range table.IndexFields() {
		refType := "*" + f.OriginalType
		refExpr := "&r." + f.OriginalName
		if strings.HasPrefix(f.OriginalType, "*") {
			// Already a pointer; borrow it as-is.
			refType = f.OriginalType
			refExpr = "r." + f.OriginalName
		}
		data.Keys = append(data.Keys, partitionKey{
			Name:      f.Name,
			FieldName: f.OriginalName,
			Type:      f.OriginalType,
			RefType:   refType,
			RefExpr:   refExpr,
		})
	}

	out := bufio.NewWriter(w)
	if err := accessorTmpl.ExecuteTemplate(out, "accessor.go.tmpl", data); err != nil {
		return err
	}
	return out.Flush()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
