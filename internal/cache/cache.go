// Package cache memoizes classifier responses across runs: memory for the
// hot path, disk so repeated comparisons of the same documents stay cheap.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching classifier responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PairKey generates a cache key for an aligned pair of clause texts. The
// NUL separator keeps ("ab","c") and ("a","bc") from colliding.
func PairKey(textA, textB string) string {
	h := sha256.New()
	h.Write([]byte(textA))
	h.Write([]byte{0})
	h.Write([]byte(textB))
	return "clausematch:v1:" + hex.EncodeToString(h.Sum(nil))
}
