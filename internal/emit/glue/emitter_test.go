// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package glue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoumanAsh/shema/internal/record"
)

func analyticsEvent() *record.Table {
	return &record.Table{
		Name: "AnalyticsEvent",
		Fields: []record.Field{
			{Name: "client_id", OriginalName: "ClientID", Type: record.String, Flags: record.Index, Doc: "Index key will go into firehose's partition_keys"},
			{Name: "client_time", OriginalName: "ClientTime", Type: record.TimestampZ, Flags: record.Index | record.DateIndex, Doc: "Special field that will be transformed in firehose as year,month,day"},
			{Name: "server_time", OriginalName: "ServerTime", Type: record.TimestampZ},
			{Name: "user_id", OriginalName: "UserID", Type: record.String, Flags: record.Optional},
			{Name: "session_id", OriginalName: "SessionID", Type: record.String},
			{Name: "extra", OriginalName: "Extras", Type: record.Object, Flags: record.Optional},
			{Name: "props", OriginalName: "Props", Type: record.Object},
			{Name: "name", OriginalName: "Name", Type: record.String},
			{Name: "byte", OriginalName: "Byte", Type: record.Byte},
			{Name: "short", OriginalName: "Short", Type: record.Short},
			{Name: "int", OriginalName: "Int", Type: record.Integer},
			{Name: "long", OriginalName: "Long", Type: record.Long},
			{Name: "ptr", OriginalName: "Ptr", Type: record.Long},
			{Name: "float", OriginalName: "Float", Type: record.Float},
			{Name: "double", OriginalName: "Double", Type: record.Double},
			{Name: "boolean", OriginalName: "Boolean", Type: record.Boolean},
			{Name: "stroka", OriginalName: "Strka", Type: record.String},
			{Name: "array", OriginalName: "Array", Type: record.Array},
		},
	}
}

const analyticsEventSchema = `{
  "name": "analytics_event",
  "partition_keys": [
    {
      "name": "year",
      "type": "string",
      "comment": "Extracted from 'client_time'",
      "mapping": "(.client_time|split(\"-\")[0])"
    },
    {
      "name": "month",
      "type": "string",
      "comment": "Extracted from 'client_time'",
      "mapping": "(.client_time|split(\"-\")[1])"
    },
    {
      "name": "day",
      "type": "string",
      "comment": "Extracted from 'client_time'",
      "mapping": "(.client_time|split(\"-\")[2]|split(\"T\")[0])"
    },
    {
      "name": "client_id",
      "type": "string",
      "comment": "Index key will go into firehose's partition_keys",
      "mapping": ".client_id"
    }
  ],
  "columns": [
    {
      "name": "client_time",
      "type": "timestamp",
      "comment": "Special field that will be transformed in firehose as year,month,day"
    },
    {
      "name": "server_time",
      "type": "timestamp",
      "comment": ""
    },
    {
      "name": "user_id",
      "type": "string",
      "comment": ""
    },
    {
      "name": "session_id",
      "type": "string",
      "comment": ""
    },
    {
      "name": "extra",
      "type": "string",
      "comment": ""
    },
    {
      "name": "props",
      "type": "string",
      "comment": ""
    },
    {
      "name": "name",
      "type": "string",
      "comment": ""
    },
    {
      "name": "byte",
      "type": "tinyint",
      "comment": ""
    },
    {
      "name": "short",
      "type": "smallint",
      "comment": ""
    },
    {
      "name": "int",
      "type": "int",
      "comment": ""
    },
    {
      "name": "long",
      "type": "bigint",
      "comment": ""
    },
    {
      "name": "ptr",
      "type": "bigint",
      "comment": ""
    },
    {
      "name": "float",
      "type": "float",
      "comment": ""
    },
    {
      "name": "double",
      "type": "double",
      "comment": ""
    },
    {
      "name": "boolean",
      "type": "boolean",
      "comment": ""
    },
    {
      "name": "stroka",
      "type": "string",
      "comment": ""
    },
    {
      "name": "array",
      "type": "string",
      "comment": ""
    }
  ]
}`

func TestEmit_AnalyticsEvent(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, (&Emitter{}).Emit(analyticsEvent(), &sb))
	assert.Equal(t, analyticsEventSchema, sb.String())
}

func TestEmit_DatePartitionsFirst(t *testing.T) {
	// Declaration order must not matter for the synthetic date keys.
	table := &record.Table{
		Name: "Event",
		Fields: []record.Field{
			{Name: "k", Type: record.String, Flags: record.Index},
			{Name: "t", Type: record.TimestampZ, Flags: record.Index | record.DateIndex},
		},
	}

	var sb strings.Builder
	require.NoError(t, (&Emitter{}).Emit(table, &sb))
	out := sb.String()

	yearAt := strings.Index(out, `"name": "year"`)
	monthAt := strings.Index(out, `"name": "month"`)
	dayAt := strings.Index(out, `"name": "day"`)
	keyAt := strings.Index(out, `"name": "k"`)
	require.NotEqual(t, -1, yearAt)
	assert.Less(t, yearAt, monthAt)
	assert.Less(t, monthAt, dayAt)
	assert.Less(t, dayAt, keyAt)

	// The date field's raw value stays queryable as a column.
	columnsAt := strings.Index(out, `"columns"`)
	assert.Contains(t, out[columnsAt:], `"name": "t"`)
	assert.NotContains(t, out[columnsAt:], `"name": "k"`)
}

func TestEmit_NoDateIndex(t *testing.T) {
	table := &record.Table{
		Name: "Plain",
		Fields: []record.Field{
			{Name: "id", Type: record.String, Flags: record.Index},
			{Name: "value", Type: record.Double},
		},
	}

	var sb strings.Builder
	require.NoError(t, (&Emitter{}).Emit(table, &sb))
	out := sb.String()

	assert.NotContains(t, out, `"year"`)
	assert.Contains(t, out, `"mapping": ".id"`)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		typ  record.Type
		want string
	}{
		{record.Byte, "tinyint"},
		{record.Short, "smallint"},
		{record.Integer, "int"},
		{record.Long, "bigint"},
		{record.Float, "float"},
		{record.Double, "double"},
		{record.String, "string"},
		{record.Boolean, "boolean"},
		{record.TimestampZ, "timestamp"},
		{record.Array, "string"},
		{record.Object, "string"},
		{record.Enum, "string"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeOf(tt.typ))
	}
}
