package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/tarantool/go-interp/hasher"
)

// RSAPSS represents RSA PSS algo for signing/verification
// (with SHA256 as digest calculation function).
type RSAPSS struct {
	publicKey  rsa.PublicKey
	privateKey rsa.PrivateKey
	hash       crypto.Hash
	hasher     hasher.Hasher
}

var _ SignerVerifier = RSAPSS{} //nolint:exhaustruct

// NewRSAPSS creates new RSAPSS object.
func NewRSAPSS(privKey rsa.PrivateKey, pubKey rsa.PublicKey) RSAPSS {
	return RSAPSS{
		publicKey:  pubKey,
		privateKey: privKey,
		hash:       crypto.SHA256,
		hasher:     hasher.NewSHA256Hasher(),
	}
}

// Name implements SignerVerifier interface.
func (r RSAPSS) Name() string {
	return "RSASSA-PSS"
}

// Hasher implements Verifier interface.
func (r RSAPSS) Hasher() hasher.Hasher {
	return r.hasher
}

func (r RSAPSS) pssOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       r.hash,
	}
}

// Sign generates SHA-256 digest and signs it using RSASSA-PSS.
func (r RSAPSS) Sign(data []byte) ([]byte, error) {
	digest, err := r.hasher.Hash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to get hash: %w", err)
	}

	return r.SignDigest(digest)
}

// SignDigest signs a SHA-256 digest using RSASSA-PSS.
func (r RSAPSS) SignDigest(digest []byte) ([]byte, error) {
	signature, err := rsa.SignPSS(rand.Reader, &r.privateKey, r.hash, digest, r.pssOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	return signature, nil
}

// Verify compares data with signature.
func (r RSAPSS) Verify(data []byte, signature []byte) error {
	digest, err := r.hasher.Hash(data)
	if err != nil {
		return fmt.Errorf("failed to get hash: %w", err)
	}

	return r.VerifyDigest(digest, signature)
}

// VerifyDigest compares a SHA-256 digest with signature.
func (r RSAPSS) VerifyDigest(digest []byte, signature []byte) error {
	err := rsa.VerifyPSS(&r.publicKey, r.hash, digest, signature, r.pssOptions())
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	return nil
}
