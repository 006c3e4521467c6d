package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// populateEntry creates a cache entry with a payload and metadata stamped at
// the given time.
func populateEntry(t *testing.T, layout Layout, url string, installed time.Time) string {
	t.Helper()

	id := Identity(url)
	entryDir := layout.EntryDir(id)
	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		t.Fatalf("create entry dir: %v", err)
	}

	if err := os.WriteFile(layout.BinaryPath(id, "binary-linux-amd64"), []byte("payload"), 0o755); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	meta := &Metadata{
		URL:       url,
		Checksum:  "ab12",
		Platform:  "linux",
		Arch:      "amd64",
		Timestamp: installed.UnixMilli(),
		Version:   SchemaVersion,
	}
	if err := WriteMetadata(entryDir, meta); err != nil {
		t.Fatalf("write metadata: %v", err)
	}

	return entryDir
}

func TestCleanupRemovesExpiredEntries(t *testing.T) {
	layout := NewLayout(t.TempDir())
	installed := time.UnixMilli(1700000000000)

	for _, url := range []string{
		"https://example.test/a",
		"https://example.test/b",
		"https://example.test/c",
	} {
		populateEntry(t, layout, url, installed)
	}

	// maxAge=0 one hour later: every entry is stale.
	scanner := NewScanner(layout, TestClock{FixedTime: installed.Add(time.Hour)}, nil)
	removed, err := scanner.Cleanup(0)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}

	dirents, _ := os.ReadDir(layout.Root())
	if len(dirents) != 0 {
		t.Errorf("cache root still has %d entries", len(dirents))
	}
}

func TestCleanupIdempotent(t *testing.T) {
	layout := NewLayout(t.TempDir())
	installed := time.UnixMilli(1700000000000)
	populateEntry(t, layout, "https://example.test/a", installed)

	scanner := NewScanner(layout, TestClock{FixedTime: installed.Add(time.Hour)}, nil)

	first, err := scanner.Cleanup(0)
	if err != nil {
		t.Fatalf("first Cleanup failed: %v", err)
	}
	if first != 1 {
		t.Errorf("first run removed = %d, want 1", first)
	}

	second, err := scanner.Cleanup(0)
	if err != nil {
		t.Fatalf("second Cleanup failed: %v", err)
	}
	if second != 0 {
		t.Errorf("second run removed = %d, want 0", second)
	}
}

func TestCleanupKeepsFreshEntries(t *testing.T) {
	layout := NewLayout(t.TempDir())
	installed := time.UnixMilli(1700000000000)
	entryDir := populateEntry(t, layout, "https://example.test/a", installed)

	scanner := NewScanner(layout, TestClock{FixedTime: installed.Add(time.Hour)}, nil)
	removed, err := scanner.Cleanup(24 * time.Hour)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if _, err := os.Stat(entryDir); err != nil {
		t.Error("fresh entry should survive cleanup")
	}
}

func TestCleanupCorruptEntries(t *testing.T) {
	layout := NewLayout(t.TempDir())

	// Empty entry with no metadata: reclaimed.
	emptyDir := layout.EntryDir(Identity("https://example.test/empty"))
	if err := os.MkdirAll(emptyDir, 0o755); err != nil {
		t.Fatalf("create empty entry: %v", err)
	}

	// Non-empty entry with no metadata: possibly mid-install, left alone.
	busyDir := layout.EntryDir(Identity("https://example.test/busy"))
	if err := os.MkdirAll(busyDir, 0o755); err != nil {
		t.Fatalf("create busy entry: %v", err)
	}
	if err := os.WriteFile(filepath.Join(busyDir, "binary-linux-amd64.download"), []byte("partial"), 0o644); err != nil {
		t.Fatalf("write partial payload: %v", err)
	}

	scanner := NewScanner(layout, TestClock{FixedTime: time.UnixMilli(1700000000000)}, nil)
	removed, err := scanner.Cleanup(0)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	if _, err := os.Stat(emptyDir); !os.IsNotExist(err) {
		t.Error("empty entry should have been reclaimed")
	}
	if _, err := os.Stat(busyDir); err != nil {
		t.Error("non-empty metadata-less entry must be left untouched")
	}
}

func TestCleanupMissingRoot(t *testing.T) {
	layout := NewLayout(filepath.Join(t.TempDir(), "does-not-exist"))

	scanner := NewScanner(layout, nil, nil)
	removed, err := scanner.Cleanup(time.Hour)
	if err != nil {
		t.Fatalf("Cleanup on missing root failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}
