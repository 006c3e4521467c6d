package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Identity derives the cache key for an artifact URL: the lowercase hex
// SHA-256 digest of the URL's UTF-8 bytes.
//
// No URL normalization is performed. Two differently-spelled URLs for the
// same resource produce different identities; callers wanting dedup must
// supply canonical URLs. The identity never encodes platform or arch, so the
// same URL can hold binaries for several platforms under distinct payload
// names.
func Identity(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
