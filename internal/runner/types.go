package runner

import (
	"io"
	"os/exec"
	"time"
)

// DefaultTTL is how long a cached binary stays valid without re-download.
const DefaultTTL = 7 * 24 * time.Hour

// Options configures a single Run call.
type Options struct {
	// Name overrides the payload filename inside the cache entry.
	// Defaults to "binary-<platform>-<arch>" plus the platform suffix.
	Name string
	// Checksum pins the expected SHA-256 of the artifact. When set, a
	// mismatch is a hard failure. When empty, the computed checksum is
	// recorded on first use.
	Checksum string
	// TTL overrides the cache validity window. Zero means DefaultTTL.
	TTL time.Duration
	// Force bypasses the validity check and always re-downloads.
	Force bool
	// Platform and Arch override the detected values for payload naming
	// and metadata.
	Platform string
	Arch     string
	// SignatureURL points at a detached PGP signature for the artifact.
	// When set, KeyringPath must name a keyring to verify against.
	SignatureURL string
	KeyringPath  string
	// Spawn is passed through to the subprocess untouched.
	Spawn SpawnOptions
}

// SpawnOptions carries subprocess settings the runner forwards verbatim.
type SpawnOptions struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result reports the outcome of a Run call. Cmd is already started; the
// runner does not wait for it.
type Result struct {
	BinaryPath string
	Downloaded bool
	Checksum   string
	Cmd        *exec.Cmd
}
