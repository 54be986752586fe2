package repository

import (
	"database/sql"
	"time"
)

// parseNullableFloat converts a sql.NullFloat64 into a *float64.
func parseNullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// nullableFloatToValue converts a *float64 to a value for SQLite storage.
// Returns nil (SQL NULL) when the pointer is nil.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// parseTime parses an RFC3339 timestamp stored as TEXT. A parse failure
// yields the zero time; stored values are always written by us.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
