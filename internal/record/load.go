// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DoumanAsh/shema/internal/casing"
)

var (
	// ErrInvalidModel indicates a schema model that violates an invariant.
	ErrInvalidModel = errors.New("invalid schema model")

	// ErrUnsupportedType indicates a declared type with no mapping.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// Definition mirrors one record definition document on disk.
type Definition struct {
	Record  string            `yaml:"record"`
	Package string            `yaml:"package"`
	Outputs []string          `yaml:"outputs"`
	Fields  []FieldDefinition `yaml:"fields"`
}

// FieldDefinition is one field entry of a record definition.
type FieldDefinition struct {
	Field     string `yaml:"field"`
	Type      string `yaml:"type"`
	Doc       string `yaml:"doc"`
	Rename    string `yaml:"rename"`
	Index     bool   `yaml:"index"`
	DateIndex bool   `yaml:"dateIndex"`
	JSON      bool   `yaml:"json"`
	Enum      bool   `yaml:"enum"`
}

// Load reads and validates a single record definition file.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	table, err := def.Table()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadDir loads every .yaml/.yml definition under dir, sorted by file name.
func LoadDir(dir string) ([]*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		table, err := Load(path)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Table converts the definition into a validated schema model.
func (d *Definition) Table() (*Table, error) {
	table := &Table{
		Name:    d.Record,
		Package: d.Package,
		Fields:  make([]Field, 0, len(d.Fields)),
	}
	if table.Package == "" {
		table.Package = "schemas"
	}

	for _, name := range d.Outputs {
		switch name {
		case "firehose-schema":
			table.Outputs.FirehoseSchema = true
		case "parquet-schema":
			table.Outputs.ParquetSchema = true
		case "partition-code":
			table.Outputs.PartitionCode = true
		case "parquet-code":
			table.Outputs.ParquetCode = true
		case "jsonschema":
			table.Outputs.JSONSchema = true
		default:
			return nil, fmt.Errorf("%w: unknown output %q", ErrInvalidModel, name)
		}
	}

	for _, fd := range d.Fields {
		field, err := fd.field()
		if err != nil {
			return nil, err
		}
		table.Fields = append(table.Fields, field)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func (fd *FieldDefinition) field() (Field, error) {
	if fd.Field == "" {
		return Field{}, fmt.Errorf("%w: field entry is missing 'field'", ErrInvalidModel)
	}

	var override *Type
	if fd.JSON {
		t := Object
		override = &t
	}
	if fd.Enum {
		t := Enum
		override = &t
	}

	optional, typ, err := parseDeclaredType(fd.Type, override)
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", fd.Field, err)
	}

	flags := Flags(0)
	if optional {
		flags |= Optional
	}
	if fd.Index {
		flags |= Index
	}
	if fd.DateIndex {
		flags |= DateIndex
	}

	name := casing.LowerSnake(fd.Field)
	if fd.Rename != "" {
		renamed := strings.TrimSpace(fd.Rename)
		if renamed == "" {
			return Field{}, fmt.Errorf("%w: field %q: rename requires a non-empty string", ErrInvalidModel, fd.Field)
		}
		name = renamed
	}

	return Field{
		Name:         name,
		OriginalName: fd.Field,
		OriginalType: fd.Type,
		Type:         typ,
		Flags:        flags,
		Doc:          fd.Doc,
	}, nil
}

// parseDeclaredType maps a Go type spelling to the model type. A leading
// '*' marks optionality. An override (json/enum) accepts any spelling and
// only keeps the optionality of the declaration.
func parseDeclaredType(spelling string, override *Type) (bool, Type, error) {
	s := strings.TrimSpace(spelling)
	if s == "" {
		return false, 0, fmt.Errorf("%w: empty type", ErrUnsupportedType)
	}

	optional := false
	if rest, ok := strings.CutPrefix(s, "*"); ok {
		optional = true
		s = rest
	}

	if override != nil {
		return optional, *override, nil
	}

	switch {
	case strings.HasPrefix(s, "[]"):
		return optional, Array, nil
	case strings.HasPrefix(s, "map["):
		return optional, Object, nil
	}

	switch s {
	case "bool":
		return optional, Boolean, nil
	case "int8":
		return optional, Byte, nil
	case "int16":
		return optional, Short, nil
	case "int32":
		return optional, Integer, nil
	case "int64", "int":
		return optional, Long, nil
	case "float32":
		return optional, Float, nil
	case "float64":
		return optional, Double, nil
	case "string":
		return optional, String, nil
	case "time.Time":
		return optional, TimestampZ, nil
	case "uint8", "uint16", "uint32", "uint64", "uint", "uintptr":
		return false, 0, fmt.Errorf("%w: unsigned integers are not supported", ErrUnsupportedType)
	default:
		return false, 0, fmt.Errorf("%w: unrecognized type %q", ErrUnsupportedType, spelling)
	}
}
