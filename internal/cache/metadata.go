package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SchemaVersion identifies the metadata sidecar schema, not the artifact.
const SchemaVersion = "1"

// Metadata is the validated provenance record stored next to each payload.
// Timestamp is epoch milliseconds of the last successful install.
type Metadata struct {
	URL       string `json:"url"`
	Checksum  string `json:"checksum"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`
}

// valid reports whether a decoded document carries the required field set.
// Anything else is treated the same as a missing sidecar.
func (m *Metadata) valid() bool {
	return m.URL != "" && m.Checksum != "" && m.Timestamp > 0
}

// ReadMetadata reads the sidecar for an entry directory.
//
// A missing file, malformed JSON, or a document that does not match the
// expected shape all yield ok=false. Sidecar corruption must never fail an
// operation on its own; it degrades to "no valid cache".
func ReadMetadata(entryDir string) (*Metadata, bool) {
	data, err := os.ReadFile(filepath.Join(entryDir, MetadataFileName))
	if err != nil {
		return nil, false
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, false
	}

	if !meta.valid() {
		return nil, false
	}

	return &meta, true
}

// WriteMetadata writes the sidecar for an entry directory.
//
// Callers must only invoke this after the payload has been durably renamed
// to its final path, preserving "metadata exists => payload exists" as
// closely as the filesystem allows.
func WriteMetadata(entryDir string, meta *Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(entryDir, MetadataFileName), data, 0o644)
}
