package cache

import (
	"path/filepath"
	"testing"
)

func TestLayoutPaths(t *testing.T) {
	layout := NewLayout("/var/cache/dlx")
	id := "abc123"

	if got, want := layout.EntryDir(id), filepath.Join("/var/cache/dlx", "abc123"); got != want {
		t.Errorf("EntryDir = %s, want %s", got, want)
	}

	if got, want := layout.BinaryPath(id, "tool"), filepath.Join("/var/cache/dlx", "abc123", "tool"); got != want {
		t.Errorf("BinaryPath = %s, want %s", got, want)
	}

	if got, want := layout.MetadataPath(id), filepath.Join("/var/cache/dlx", "abc123", MetadataFileName); got != want {
		t.Errorf("MetadataPath = %s, want %s", got, want)
	}
}

func TestTempPathIsSibling(t *testing.T) {
	final := "/var/cache/dlx/abc/tool"
	tmp := TempPath(final)

	if filepath.Dir(tmp) != filepath.Dir(final) {
		t.Error("temp path must live in the same directory as the final path")
	}

	if tmp == final {
		t.Error("temp path must differ from the final path")
	}
}
