package cache

import (
	"os"

	"github.com/pkg/errors"
)

// Remove deletes the cache entry for a single artifact URL.
// Removing an entry that does not exist is not an error.
func Remove(layout Layout, url string) error {
	entryDir := layout.EntryDir(Identity(url))
	if err := os.RemoveAll(entryDir); err != nil {
		return errors.Wrapf(err, "remove cache entry %s", entryDir)
	}
	return nil
}

// Clear deletes every entry under the cache root. The root directory itself
// is kept so subsequent installs need no special-casing.
func Clear(layout Layout) error {
	dirents, err := os.ReadDir(layout.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read cache root %s", layout.Root())
	}

	for _, dirent := range dirents {
		entryDir := layout.EntryDir(dirent.Name())
		if err := os.RemoveAll(entryDir); err != nil {
			return errors.Wrapf(err, "clear cache entry %s", entryDir)
		}
	}

	return nil
}
