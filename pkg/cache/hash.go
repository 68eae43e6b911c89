package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// TransformKey derives the cache key for one transform call: the source
// kind, the raw payload bytes, and the options that shaped the output. Any
// change to payload or options produces a different key.
func TransformKey(source string, payload []byte, opts any) string {
	optData, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte{0})
	h.Write(optData)
	return fmt.Sprintf("transform:%s:%s", source, hex.EncodeToString(h.Sum(nil)))
}
