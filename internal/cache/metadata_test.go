package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMetadataRoundtrip(t *testing.T) {
	entryDir := t.TempDir()

	meta := &Metadata{
		URL:       "https://example.test/tool",
		Checksum:  "d5978f17f09c1c002abbf1e21a3c205e223f62c0c7e81ca9fe075084e758c726",
		Platform:  "linux",
		Arch:      "amd64",
		Timestamp: 1700000000000,
		Version:   SchemaVersion,
	}

	if err := WriteMetadata(entryDir, meta); err != nil {
		t.Fatalf("WriteMetadata failed: %v", err)
	}

	got, ok := ReadMetadata(entryDir)
	if !ok {
		t.Fatal("ReadMetadata reported absent after write")
	}

	if *got != *meta {
		t.Errorf("metadata mismatch: got %+v, want %+v", got, meta)
	}
}

func TestReadMetadataAbsent(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file at all
	}{
		{name: "missing_file"},
		{name: "malformed_json", content: "{not json"},
		{name: "empty_object", content: "{}"},
		{name: "wrong_shape", content: `{"foo": "bar", "baz": 42}`},
		{name: "missing_checksum", content: `{"url": "https://x", "timestamp": 123}`},
		{name: "missing_url", content: `{"checksum": "ab", "timestamp": 123}`},
		{name: "zero_timestamp", content: `{"url": "https://x", "checksum": "ab", "timestamp": 0}`},
		{name: "json_array", content: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryDir := t.TempDir()

			if tt.content != "" {
				path := filepath.Join(entryDir, MetadataFileName)
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write sidecar: %v", err)
				}
			}

			if _, ok := ReadMetadata(entryDir); ok {
				t.Error("expected metadata to be treated as absent")
			}
		})
	}
}

func TestWriteMetadataPrettyPrinted(t *testing.T) {
	entryDir := t.TempDir()

	meta := &Metadata{
		URL:       "https://example.test/tool",
		Checksum:  "ab",
		Timestamp: 1,
		Version:   SchemaVersion,
	}
	if err := WriteMetadata(entryDir, meta); err != nil {
		t.Fatalf("WriteMetadata failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(entryDir, MetadataFileName))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}

	if string(data[0]) != "{" || !containsNewline(data) {
		t.Error("sidecar should be indented JSON")
	}
}

func containsNewline(data []byte) bool {
	for _, b := range data {
		if b == '\n' {
			return true
		}
	}
	return false
}
