// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package glue emits the Firehose/Glue ingestion schema document.
package glue

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DoumanAsh/shema/internal/emit"
	"github.com/DoumanAsh/shema/internal/record"
)

func init() {
	emit.Register(&Emitter{})
}

// column is one partition key or column entry of the schema document.
type column struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Comment string `json:"comment"`
	Mapping string `json:"mapping,omitempty"`
}

// document is the ingestion schema wire format. Key and array order are a
// stable contract with the delivery pipeline.
type document struct {
	Name          string   `json:"name"`
	PartitionKeys []column `json:"partition_keys"`
	Columns       []column `json:"columns"`
}

// Emitter derives the Firehose delivery schema (partition keys + columns).
type Emitter struct{}

// Name returns the format identifier.
func (e *Emitter) Name() string {
	return "firehose-schema"
}

// FileExtension returns the output file extension.
func (e *Emitter) FileExtension() string {
	return ".json"
}

// Emit writes the schema document for table to w.
//
// The date index field contributes three synthetic partition keys first
// (year, month, day) whose mappings slice its RFC3339 representation; it
// then stays in columns so its raw value remains queryable. Plain index
// fields become partition keys mapped as-is; everything else is a column.
func (e *Emitter) Emit(table *record.Table, w io.Writer) error {
	doc := document{
		Name:          table.TableName(),
		PartitionKeys: []column{},
		Columns:       []column{},
	}

	if date := table.DateIndexField(); date != nil {
		comment := fmt.Sprintf("Extracted from '%s'", date.Name)
		doc.PartitionKeys = append(doc.PartitionKeys,
			column{
				Name:    "year",
				Type:    "string",
				Comment: comment,
				Mapping: fmt.Sprintf("(.%s|split(\"-\")[0])", date.Name),
			},
			column{
				Name:    "month",
				Type:    "string",
				Comment: comment,
				Mapping: fmt.Sprintf("(.%s|split(\"-\")[1])", date.Name),
			},
			column{
				Name:    "day",
				Type:    "string",
				Comment: comment,
				Mapping: fmt.Sprintf("(.%s|split(\"-\")[2]|split(\"T\")[0])", date.Name),
			},
		)
	}

	for _, field := range table.Fields {
		entry := column{
			Name:    field.Name,
			Type:    TypeOf(field.Type),
			Comment: field.Doc,
		}

		if field.Flags.Has(record.Index) && !field.Flags.Has(record.DateIndex) {
			entry.Mapping = "." + field.Name
			doc.PartitionKeys = append(doc.PartitionKeys, entry)
		} else {
			doc.Columns = append(doc.Columns, entry)
		}
	}

	raw, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
