package cache

import (
	"testing"
	"time"
)

func writeTestMetadata(t *testing.T, entryDir string, timestamp int64) {
	t.Helper()

	meta := &Metadata{
		URL:       "https://example.test/tool",
		Checksum:  "ab12",
		Platform:  "linux",
		Arch:      "amd64",
		Timestamp: timestamp,
		Version:   SchemaVersion,
	}
	if err := WriteMetadata(entryDir, meta); err != nil {
		t.Fatalf("WriteMetadata failed: %v", err)
	}
}

func TestCheckerValid(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	ttl := time.Hour

	tests := []struct {
		name      string
		timestamp int64 // 0 means no metadata written
		want      bool
	}{
		{name: "fresh", timestamp: now.UnixMilli() - 1000, want: true},
		{name: "just_installed", timestamp: now.UnixMilli(), want: true},
		{name: "boundary_age_equals_ttl", timestamp: now.Add(-ttl).UnixMilli(), want: false},
		{name: "expired", timestamp: now.Add(-2 * ttl).UnixMilli(), want: false},
		{name: "future_timestamp", timestamp: now.Add(time.Hour).UnixMilli(), want: true},
		{name: "absent_metadata", timestamp: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryDir := t.TempDir()
			if tt.timestamp != 0 {
				writeTestMetadata(t, entryDir, tt.timestamp)
			}

			checker := NewChecker(TestClock{FixedTime: now})
			if got := checker.Valid(entryDir, ttl); got != tt.want {
				t.Errorf("Valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckerExpiresOverTime(t *testing.T) {
	entryDir := t.TempDir()
	installed := time.UnixMilli(1700000000000)
	writeTestMetadata(t, entryDir, installed.UnixMilli())

	ttl := 24 * time.Hour

	before := NewChecker(TestClock{FixedTime: installed.Add(ttl - time.Millisecond)})
	if !before.Valid(entryDir, ttl) {
		t.Error("entry should be valid just inside the TTL")
	}

	after := NewChecker(TestClock{FixedTime: installed.Add(ttl + time.Millisecond)})
	if after.Valid(entryDir, ttl) {
		t.Error("entry should be invalid once the TTL has passed")
	}
}
