// Package crypto provides the hash and key primitives used around mnemonic
// encoding: checksum digests, key fingerprints, and secp256k1 public keys.
package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/zeebo/blake3"
)

// HashFunc computes a 32-byte digest of data.
type HashFunc func(data []byte) types.Hash

// Hash algorithm names accepted by HashByName.
const (
	AlgSHA256 = "sha256"
	AlgBLAKE3 = "blake3"
)

// FingerprintSize is the number of digest bytes shown in a fingerprint.
const FingerprintSize = 4

// SHA256 computes the SHA-256 digest of data.
func SHA256(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// HashByName returns the hash function registered under name.
func HashByName(name string) (HashFunc, error) {
	switch strings.ToLower(name) {
	case AlgSHA256:
		return SHA256, nil
	case AlgBLAKE3:
		return Hash, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}

// Fingerprint returns a short hex identifier for a key. It is the first
// FingerprintSize bytes of the BLAKE3 hash, so two copies of a backup can be
// compared without showing the key.
func Fingerprint(key []byte) string {
	return Hash(key).String()[:FingerprintSize*2]
}
