// Package hash wraps the xxHash64 checksum used to verify persisted model
// files.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
