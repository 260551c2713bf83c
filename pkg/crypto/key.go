package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidSecret is returned when bytes are not a usable secp256k1 scalar.
var ErrInvalidSecret = errors.New("invalid secp256k1 secret")

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret. Unlike a
// plain conversion it rejects zero and values not below the group order,
// since such a secret cannot belong to any wallet.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d",
			ErrInvalidSecret, secp256k1.PrivKeyBytesLen, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: exceeds group order", ErrInvalidSecret)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: zero", ErrInvalidSecret)
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// PublicKeyFromSecret returns the compressed public key for a 32-byte
// secret. The intermediate private key is zeroed before returning.
func PublicKeyFromSecret(secret []byte) ([]byte, error) {
	pk, err := PrivateKeyFromBytes(secret)
	if err != nil {
		return nil, err
	}
	defer pk.Zero()
	return pk.PublicKey(), nil
}
