package db

import (
	"testing"
	"time"
)

// The same store code runs over both engines, so the accessors must accept
// sqlite-shaped values (int64, text timestamps) and postgres-shaped values
// (int32, bool, time.Time) interchangeably.
func TestRowAccessors(t *testing.T) {
	pgTime := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	row := Row{
		"sqlite_id":   int64(42),
		"pg_id":       int32(42),
		"text":        "hello",
		"bytes":       []byte("hello"),
		"null_text":   nil,
		"sqlite_bool": int64(1),
		"pg_bool":     true,
		"false_bool":  int64(0),
		"pg_time":     pgTime,
		"sqlite_time": "2025-06-01 10:30:00",
		"date_only":   "2025-06-01",
		"bad_time":    "not a timestamp",
	}

	if got := row.Int64("sqlite_id"); got != 42 {
		t.Errorf("Int64(sqlite_id) = %d, want 42", got)
	}
	if got := row.Int64("pg_id"); got != 42 {
		t.Errorf("Int64(pg_id) = %d, want 42", got)
	}
	if got := row.Int64("missing"); got != 0 {
		t.Errorf("Int64(missing) = %d, want 0", got)
	}

	if got := row.String("text"); got != "hello" {
		t.Errorf("String(text) = %q", got)
	}
	if got := row.String("bytes"); got != "hello" {
		t.Errorf("String(bytes) = %q", got)
	}
	if got := row.String("null_text"); got != "" {
		t.Errorf("String(null_text) = %q, want empty", got)
	}

	if !row.Bool("sqlite_bool") {
		t.Error("Bool(sqlite_bool) = false, want true")
	}
	if !row.Bool("pg_bool") {
		t.Error("Bool(pg_bool) = false, want true")
	}
	if row.Bool("false_bool") {
		t.Error("Bool(false_bool) = true, want false")
	}

	if got := row.Time("pg_time"); !got.Equal(pgTime) {
		t.Errorf("Time(pg_time) = %v, want %v", got, pgTime)
	}
	if got := row.Time("sqlite_time"); !got.Equal(pgTime) {
		t.Errorf("Time(sqlite_time) = %v, want %v", got, pgTime)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := row.Time("date_only"); !got.Equal(want) {
		t.Errorf("Time(date_only) = %v, want %v", got, want)
	}
	if got := row.Time("bad_time"); !got.IsZero() {
		t.Errorf("Time(bad_time) = %v, want zero", got)
	}
}
