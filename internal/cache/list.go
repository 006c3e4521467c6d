package cache

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry summarizes one cache entry for inventory reporting.
type Entry struct {
	ID       string
	URL      string
	Checksum string
	Platform string
	Arch     string
	Age      time.Duration
	Binary   string
	Size     int64
}

// Lister enumerates cache entries with derived statistics.
// Listing is read-only; it never removes or repairs anything.
type Lister struct {
	layout Layout
	clock  Clock
}

// NewLister creates an inventory lister.
func NewLister(layout Layout, clock Clock) *Lister {
	if clock == nil {
		clock = RealClock{}
	}
	return &Lister{layout: layout, clock: clock}
}

// Entries returns a summary for every entry with valid metadata, in
// directory enumeration order. Entries without readable metadata, or with
// no payload file, are silently skipped.
func (l *Lister) Entries() ([]Entry, error) {
	dirents, err := os.ReadDir(l.layout.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	now := l.clock.Now().UnixMilli()

	var entries []Entry
	for _, dirent := range dirents {
		if !dirent.IsDir() {
			continue
		}

		entryDir := l.layout.EntryDir(dirent.Name())
		meta, ok := ReadMetadata(entryDir)
		if !ok {
			continue
		}

		binary, size, ok := findBinary(entryDir)
		if !ok {
			continue
		}

		entries = append(entries, Entry{
			ID:       dirent.Name(),
			URL:      meta.URL,
			Checksum: meta.Checksum,
			Platform: meta.Platform,
			Arch:     meta.Arch,
			Age:      time.Duration(now-meta.Timestamp) * time.Millisecond,
			Binary:   binary,
			Size:     size,
		})
	}

	return entries, nil
}

// findBinary returns the first non-hidden file in an entry directory and
// its size. Hidden files (the metadata sidecar among them) never count as
// the binary.
func findBinary(entryDir string) (string, int64, bool) {
	contents, err := os.ReadDir(entryDir)
	if err != nil {
		return "", 0, false
	}

	for _, f := range contents {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}

		info, err := os.Stat(filepath.Join(entryDir, f.Name()))
		if err != nil {
			continue
		}

		return f.Name(), info.Size(), true
	}

	return "", 0, false
}
