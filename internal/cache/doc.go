// Package cache implements the content-addressed on-disk cache that backs
// dlx binary execution.
//
// # Layout
//
// Every cached artifact lives in its own entry directory under the cache
// root, named by the lowercase hex SHA-256 of the artifact URL:
//
//	<cache-root>/<sha256(url)>/
//	    <binary-name>            # the executable payload
//	    .dlx-metadata.json       # provenance sidecar
//
// The sidecar records the URL, the payload checksum, platform/arch, and the
// install timestamp. A sidecar that is missing, malformed, or incomplete is
// treated as absent, never as an error: the subsystem degrades to "no valid
// cache" and the caller re-downloads.
//
// # Components
//
//   - Layout: pure path mapping from identity to entry/payload/sidecar paths
//   - Identity: URL -> cache key derivation
//   - Metadata read/write with shape validation
//   - Checker: TTL-based validity decisions with an injected Clock
//   - Scanner: expiry cleanup that reclaims stale and empty entries
//   - Lister: read-only inventory with derived age and size
//
// The package performs no network I/O and never launches processes; that is
// the runner package's job.
package cache
