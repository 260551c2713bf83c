// Package types defines the primitive value types shared across packages.
package types

import "encoding/hex"

// HashSize is the length of a hash in bytes.
const HashSize = 32

// Hash represents a 256-bit digest.
type Hash [HashSize]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
