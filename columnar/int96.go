// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

package columnar

import (
	"encoding/binary"
	"time"
)

// Int96 is the legacy 96-bit parquet timestamp: nanoseconds since the
// day's midnight as a little-endian uint64 (two 32-bit halves), followed
// by the Julian day number as a little-endian uint32.
type Int96 [12]byte

// TimestampInt96 encodes t. The Julian day is computed from t's own
// calendar date and the nanosecond count from that date's midnight in t's
// location, so the encoding agrees with the calendar accessors used for
// partition paths.
func TimestampInt96(t time.Time) Int96 {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	nanos := uint64(t.Sub(midnight).Nanoseconds())

	var out Int96
	binary.LittleEndian.PutUint32(out[0:4], uint32(nanos))
	binary.LittleEndian.PutUint32(out[4:8], uint32(nanos>>32))
	binary.LittleEndian.PutUint32(out[8:12], JulianDay(year, month, day))
	return out
}

// Time decodes the encoded instant in UTC.
func (i Int96) Time() time.Time {
	nanos := uint64(binary.LittleEndian.Uint32(i[0:4])) |
		uint64(binary.LittleEndian.Uint32(i[4:8]))<<32
	julian := binary.LittleEndian.Uint32(i[8:12])

	days := int(julian) - unixEpochJulianDay
	return time.Unix(0, 0).UTC().
		AddDate(0, 0, days).
		Add(time.Duration(nanos)) //nolint:gosec // nanos < 2^47
}

// unixEpochJulianDay is the Julian day number of 1970-01-01.
const unixEpochJulianDay = 2440588

// JulianDay returns the Julian day number of the given calendar date
// (Fliegel & Van Flandern).
func JulianDay(year int, month time.Month, day int) uint32 {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return uint32(jdn) //nolint:gosec // negative only before 4714 BC
}
