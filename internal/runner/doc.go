// Package runner downloads, verifies, installs, and executes binaries
// fetched from URLs, backed by the content-addressed cache package.
//
// # Flow
//
// A Run call moves through four states:
//
//	CHECK    compute identity and paths; force skips straight to DOWNLOAD
//	VALID    reuse the cached payload (downloaded=false)
//	DOWNLOAD fetch bytes, verify checksum (and optionally a detached PGP
//	         signature), install atomically, write metadata
//	EXECUTE  launch the payload as a subprocess and return without waiting
//
// # Integrity Model
//
// Every download is hashed with SHA-256. When the caller pins an expected
// checksum, a mismatch aborts the install before anything reaches the final
// payload path. Without a pin the computed checksum is recorded in the
// entry metadata (trust-on-first-use). Callers wanting authenticity on top
// of integrity supply a detached signature URL and a PGP keyring.
//
// # Atomicity
//
// The payload is written to a sibling temporary file and promoted with a
// single rename, so readers observe either no payload or a complete one.
// Metadata is written only after the rename succeeds. There is no
// cross-process locking: two concurrent installs of the same identity race
// benignly, with the last rename winning.
package runner
