package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// CacheKey derives the cache entry name for a flake root path.
// The key is the lowercase hex SHA-256 of the path bytes: deterministic
// across invocations, collision resistant and safe as a file name, so
// invocations from different subdirectories of the same project share one
// entry.
func CacheKey(root string) string {
	sum := sha256.Sum256([]byte(root))
	return hex.EncodeToString(sum[:])
}
