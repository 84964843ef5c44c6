// Package hasher provides digest accumulators that can observe bytes while
// they are being parsed.
package hasher

import (
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

// Hasher describes a hash function.
type Hasher interface {
	// Name returns the name of the hash function.
	Name() string
	// Hash returns the digest of data in one go.
	Hash(data []byte) ([]byte, error)
	// New returns a fresh streaming digest.
	New() hash.Hash
}

type hasher struct {
	name    string
	newHash func() hash.Hash
}

// NewSHA256Hasher creates a SHA-256 Hasher.
func NewSHA256Hasher() Hasher {
	return hasher{name: "sha256", newHash: sha256.New}
}

// NewSHA1Hasher creates a SHA-1 Hasher.
func NewSHA1Hasher() Hasher {
	return hasher{name: "sha1", newHash: sha1.New} //nolint:gosec
}

// NewXXHasher creates a 64-bit xxHash Hasher. It is not cryptographic and
// fits checksumming of parsed fields.
func NewXXHasher() Hasher {
	return hasher{name: "xxhash64", newHash: func() hash.Hash { return xxhash.New() }}
}

// Name implements Hasher interface.
func (h hasher) Name() string {
	return h.name
}

// New implements Hasher interface.
func (h hasher) New() hash.Hash {
	return h.newHash()
}

// Hash implements Hasher interface.
func (h hasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	digest := h.newHash()

	n, err := digest.Write(data)
	if n < len(data) || err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	return digest.Sum(nil), nil
}

// Init returns an accumulator constructor for interp.ObserveBytes.
func Init(h Hasher) func() hash.Hash {
	return h.New
}

// Fold writes observed bytes into the digest. It matches the fold signature
// of interp.ObserveBytes.
func Fold(acc *hash.Hash, data []byte) {
	if *acc == nil {
		return
	}

	_, _ = (*acc).Write(data)
}
