package cache

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxAge is the default staleness threshold for cache cleanup.
const DefaultMaxAge = 7 * 24 * time.Hour

// defaultScanConcurrency bounds how many entries a scan inspects at once.
const defaultScanConcurrency = 4

// Scanner walks the cache root and evicts stale or abandoned entries.
type Scanner struct {
	layout Layout
	clock  Clock
	log    logrus.FieldLogger
}

// NewScanner creates an expiry scanner.
// A nil clock falls back to the system clock; a nil logger to the standard one.
func NewScanner(layout Layout, clock Clock, log logrus.FieldLogger) *Scanner {
	if clock == nil {
		clock = RealClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scanner{layout: layout, clock: clock, log: log}
}

// Cleanup removes every entry whose metadata age exceeds maxAge and returns
// the number of entries removed.
//
// Entries without readable metadata are removed only when structurally
// empty; a non-empty entry with no sidecar may be mid-install and is left
// untouched. A single entry's failure never aborts the scan: errors are
// logged and the scan continues so one bad entry cannot block reclamation
// of the rest.
func (s *Scanner) Cleanup(maxAge time.Duration) (int, error) {
	dirents, err := os.ReadDir(s.layout.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	now := s.clock.Now().UnixMilli()

	var removed atomic.Int64
	var group errgroup.Group
	group.SetLimit(defaultScanConcurrency)

	for _, dirent := range dirents {
		if !dirent.IsDir() {
			continue
		}

		entryDir := s.layout.EntryDir(dirent.Name())
		group.Go(func() error {
			if s.cleanupEntry(entryDir, now, maxAge) {
				removed.Add(1)
			}
			// Per-entry errors are swallowed; the scan must finish.
			return nil
		})
	}

	_ = group.Wait()
	return int(removed.Load()), nil
}

// cleanupEntry handles one entry and reports whether it was removed.
func (s *Scanner) cleanupEntry(entryDir string, nowMillis int64, maxAge time.Duration) bool {
	meta, ok := ReadMetadata(entryDir)
	if !ok {
		return s.reclaimEmpty(entryDir)
	}

	if nowMillis-meta.Timestamp <= maxAge.Milliseconds() {
		return false
	}

	if err := os.RemoveAll(entryDir); err != nil {
		s.log.WithFields(logrus.Fields{
			"entry": entryDir,
			"error": err,
		}).Warn("failed to remove expired cache entry")
		return false
	}

	s.log.WithField("entry", entryDir).Debug("removed expired cache entry")
	return true
}

// reclaimEmpty removes an entry with no readable metadata, but only when the
// directory is structurally empty.
func (s *Scanner) reclaimEmpty(entryDir string) bool {
	contents, err := os.ReadDir(entryDir)
	if err != nil || len(contents) > 0 {
		return false
	}

	if err := os.Remove(entryDir); err != nil {
		s.log.WithFields(logrus.Fields{
			"entry": entryDir,
			"error": err,
		}).Warn("failed to remove empty cache entry")
		return false
	}

	s.log.WithField("entry", entryDir).Debug("removed empty cache entry")
	return true
}
