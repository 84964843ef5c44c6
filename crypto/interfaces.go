// Package crypto implements signatures over message digests, including
// digests accumulated while a message is being parsed.
package crypto

//go:generate go tool minimock -i Signer,Verifier -o ../internal/mocks -s _mock.go -p mocks

import (
	"github.com/tarantool/go-interp/hasher"
)

// Signer signs messages.
type Signer interface {
	// Name returns name of the crypto algorithm, used by signer.
	Name() string
	// Sign returns signature for passed data.
	Sign(data []byte) ([]byte, error)
	// SignDigest returns signature for an already computed digest.
	SignDigest(digest []byte) ([]byte, error)
}

// Verifier checks message signatures.
type Verifier interface {
	// Name returns name of the crypto algorithm, used by verifier.
	Name() string
	// Hasher returns the hash function digests must be computed with.
	Hasher() hasher.Hasher
	// Verify checks data and signature mapping.
	Verify(data []byte, signature []byte) error
	// VerifyDigest checks a signature against an already computed digest.
	VerifyDigest(digest []byte, signature []byte) error
}

// SignerVerifier common interface.
type SignerVerifier interface {
	Signer
	Verifier
}
