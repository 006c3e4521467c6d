package runner

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/dlxrun/dlx/internal/cache"
)

// Installer places verified payload bytes into a cache entry atomically.
type Installer struct {
	log logrus.FieldLogger
}

// NewInstaller creates an installer.
func NewInstaller(log logrus.FieldLogger) *Installer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Installer{log: log}
}

// Install writes the payload into entryDir and promotes it to finalPath.
//
// The sequence is fixed: ensure the entry directory, write the full payload
// to a sibling temp file, set the executable bit (non-Windows), then rename
// onto the final path. The rename is the atomicity boundary: readers see
// either no file or the complete payload, never a partial write. On any
// failure the temp file is removed best-effort; a cleanup failure never
// masks the original error.
func (i *Installer) Install(entryDir, finalPath string, payload []byte) error {
	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		return fmt.Errorf("create entry dir: %w", err)
	}

	tmpPath := cache.TempPath(finalPath)
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return fmt.Errorf("write temp payload: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0o755); err != nil {
			i.discardTemp(tmpPath)
			return fmt.Errorf("set executable: %w", err)
		}
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		i.discardTemp(tmpPath)
		return fmt.Errorf("rename payload: %w", err)
	}

	i.log.WithField("path", finalPath).Debug("installed payload")
	return nil
}

// discardTemp removes a leftover temp file, logging but otherwise ignoring
// failures so the install error stays the one that surfaces.
func (i *Installer) discardTemp(tmpPath string) {
	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		i.log.WithFields(logrus.Fields{
			"path":  tmpPath,
			"error": err,
		}).Warn("failed to remove temp payload")
	}
}
