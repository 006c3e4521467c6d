package cache

import "time"

// Checker decides whether a cache entry may be reused.
type Checker struct {
	clock Clock
}

// NewChecker creates a validity checker with the given clock.
// A nil clock falls back to the system clock.
func NewChecker(clock Clock) *Checker {
	if clock == nil {
		clock = RealClock{}
	}
	return &Checker{clock: clock}
}

// Valid reports whether the entry at entryDir is fresh under the given TTL.
//
// An absent or corrupt sidecar is invalid. Otherwise the entry is valid iff
// its age is strictly below the TTL; age == ttl is already stale. A negative
// age (future timestamp, clock skew) counts as valid; callers needing skew
// protection supply a defensive TTL.
func (c *Checker) Valid(entryDir string, ttl time.Duration) bool {
	meta, ok := ReadMetadata(entryDir)
	if !ok {
		return false
	}

	age := c.clock.Now().UnixMilli() - meta.Timestamp
	return age < ttl.Milliseconds()
}
