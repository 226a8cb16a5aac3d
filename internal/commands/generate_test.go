// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analyticsEventDefinition = `record: AnalyticsEvent
package: schemas
outputs:
  - firehose-schema
  - parquet-schema
  - partition-code
  - parquet-code
  - jsonschema
fields:
  - field: ClientID
    type: string
    index: true
    doc: Index key will go into firehose's partition_keys
  - field: ClientTime
    type: time.Time
    index: true
    dateIndex: true
    doc: Special field that will be transformed in firehose as year,month,day
  - field: ServerTime
    type: time.Time
  - field: UserID
    type: "*string"
  - field: SessionID
    type: string
  - field: Extras
    type: "*map[string]string"
    rename: extra
  - field: Props
    type: map[string]any
  - field: Name
    type: string
  - field: Byte
    type: int8
  - field: Short
    type: int16
  - field: Int
    type: int32
  - field: Long
    type: int64
  - field: Ptr
    type: int64
  - field: Float
    type: float32
  - field: Double
    type: float64
  - field: Boolean
    type: bool
  - field: Strka
    type: string
    rename: stroka
  - field: Array
    type: "[]string"
`

func setupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shema.yaml"),
		[]byte("version: 1\ndefinitions: definitions\noutput: out\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "definitions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "definitions", "analytics_event.yaml"),
		[]byte(analyticsEventDefinition), 0o644))

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestGenerate_All(t *testing.T) {
	dir := setupProject(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--all"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))

	outDir := filepath.Join(dir, "out")

	firehose, err := os.ReadFile(filepath.Join(outDir, "analytics_event.json"))
	require.NoError(t, err)
	assert.Contains(t, string(firehose), `"name": "analytics_event"`)
	assert.Contains(t, string(firehose), `"mapping": "(.client_time|split(\"-\")[0])"`)
	assert.Contains(t, string(firehose), `"mapping": ".client_id"`)
	assert.Contains(t, string(firehose), `"name": "stroka"`)

	ddl, err := os.ReadFile(filepath.Join(outDir, "analytics_event.parquet.txt"))
	require.NoError(t, err)
	assert.Equal(t, `message analytics_event {
  REQUIRED INT96 client_time;
  REQUIRED INT96 server_time;
  OPTIONAL BYTE_ARRAY user_id (UTF8);
  REQUIRED BYTE_ARRAY session_id (UTF8);
  OPTIONAL BYTE_ARRAY extra (UTF8);
  REQUIRED BYTE_ARRAY props (UTF8);
  REQUIRED BYTE_ARRAY name (UTF8);
  REQUIRED INT32 byte;
  REQUIRED INT32 short;
  REQUIRED INT32 int;
  REQUIRED INT64 long;
  REQUIRED INT64 ptr;
  REQUIRED FLOAT float;
  REQUIRED DOUBLE double;
  REQUIRED BOOLEAN boolean;
  REQUIRED BYTE_ARRAY stroka (UTF8);
  REQUIRED BYTE_ARRAY array (UTF8);
}`, string(ddl))

	partition, err := os.ReadFile(filepath.Join(outDir, "analytics_event_partition.go"))
	require.NoError(t, err)
	assert.Contains(t, string(partition), "package schemas")
	assert.Contains(t, string(partition), "func (r *AnalyticsEvent) S3PathPrefix() fmt.Stringer {")

	writer, err := os.ReadFile(filepath.Join(outDir, "analytics_event_parquet.go"))
	require.NoError(t, err)
	assert.Contains(t, string(writer), "func WriteAnalyticsEventRowGroup(records []AnalyticsEvent, rg columnar.RowGroupWriter) error {")

	schema, err := os.ReadFile(filepath.Join(outDir, "analytics_event.schema.json"))
	require.NoError(t, err)
	assert.Contains(t, string(schema), `"type": "object"`)
}

func TestGenerate_SingleFormat(t *testing.T) {
	dir := setupProject(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--record", "analytics_event", "--format", "parquet-schema"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "analytics_event.parquet.txt", entries[0].Name())
}

func TestGenerate_Stdout(t *testing.T) {
	setupProject(t)

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--all", "--stdout"})
	root.SetOut(&out)
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "==> analytics_event.json\n")
	assert.Contains(t, out.String(), "==> analytics_event.parquet.txt\n")
	assert.Contains(t, out.String(), "message analytics_event {")

	// Nothing written to disk.
	_, err := os.Stat("out")
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_UnknownRecord(t *testing.T) {
	setupProject(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--record", "nope"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	require.EqualError(t, err, "unknown record: nope")
}

func TestGenerate_UnknownFormat(t *testing.T) {
	setupProject(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--all", "--format", "avro"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	require.EqualError(t, err, "unknown format: avro")
}

func TestGenerate_NotInitialized(t *testing.T) {
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(t.TempDir()))

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--all"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a shema project")
}
