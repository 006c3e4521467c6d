package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// MetadataFileName is the name of the per-entry provenance sidecar.
	MetadataFileName = ".dlx-metadata.json"

	// TempSuffix is appended to a payload's final name while it is being
	// written. The temp file lives in the same directory as the final
	// payload so the promoting rename stays on one filesystem.
	TempSuffix = ".download"
)

// Layout maps a cache root and an identity onto concrete filesystem paths.
// It holds no state beyond the root and performs no I/O.
type Layout struct {
	root string
}

// NewLayout creates a layout rooted at the given directory.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// DefaultRoot returns the default cache root under the user cache directory.
func DefaultRoot() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "dlx"), nil
}

// Root returns the cache root directory.
func (l Layout) Root() string {
	return l.root
}

// EntryDir returns the directory for a cache identity.
func (l Layout) EntryDir(id string) string {
	return filepath.Join(l.root, id)
}

// BinaryPath returns the final payload path inside an entry.
func (l Layout) BinaryPath(id, name string) string {
	return filepath.Join(l.root, id, name)
}

// MetadataPath returns the sidecar path inside an entry.
func (l Layout) MetadataPath(id string) string {
	return filepath.Join(l.root, id, MetadataFileName)
}

// TempPath returns the sibling temporary path for a final payload path.
func TempPath(finalPath string) string {
	return finalPath + TempSuffix
}
