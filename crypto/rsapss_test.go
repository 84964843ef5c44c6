package crypto_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-interp/crypto"
	"github.com/tarantool/go-interp/hasher"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return privateKey
}

func TestRsaWithoutKeys(t *testing.T) {
	t.Parallel()

	rsapss := crypto.NewRSAPSS(rsa.PrivateKey{}, rsa.PublicKey{}) //nolint:exhaustruct

	data := []byte("abc")

	sig, err := rsapss.Sign(data)
	require.ErrorContains(t, err, "failed to sign")
	require.Nil(t, sig, "signature must be nil")

	err = rsapss.Verify(data, sig)
	require.ErrorContains(t, err, "failed to verify")
}

func TestRsaSignVerify(t *testing.T) {
	t.Parallel()

	privateKey := newKey(t)
	rsapss := crypto.NewRSAPSS(*privateKey, privateKey.PublicKey)

	data := []byte("abc")

	sig, err := rsapss.Sign(data)
	require.NoError(t, err, "Sign must be successful")
	require.NotNil(t, sig, "signature must be returned")

	require.NoError(t, rsapss.Verify(data, sig), "Verify must be successful")
	require.ErrorContains(t, rsapss.Verify([]byte("abd"), sig), "failed to verify")
}

func TestRsaDigest(t *testing.T) {
	t.Parallel()

	privateKey := newKey(t)
	rsapss := crypto.NewRSAPSS(*privateKey, privateKey.PublicKey)

	data := []byte("streamed payload")
	digest := sha256.Sum256(data)

	sig, err := rsapss.SignDigest(digest[:])
	require.NoError(t, err)

	// A digest signature verifies against the whole message and vice versa.
	require.NoError(t, rsapss.Verify(data, sig))

	sig, err = rsapss.Sign(data)
	require.NoError(t, err)
	require.NoError(t, rsapss.VerifyDigest(digest[:], sig))

	acc := hasher.Init(rsapss.Hasher())()
	hasher.Fold(&acc, data[:8])
	hasher.Fold(&acc, data[8:])
	require.NoError(t, rsapss.VerifyDigest(acc.Sum(nil), sig))
}

func TestRsaNil(t *testing.T) {
	t.Parallel()

	privateKey := newKey(t)
	rsapss := crypto.NewRSAPSS(*privateKey, privateKey.PublicKey)

	_, err := rsapss.Sign(nil)
	require.ErrorIs(t, err, hasher.ErrDataIsNil)
}

func TestRSAPSS_Name(t *testing.T) {
	t.Parallel()

	rsapss := crypto.NewRSAPSS(rsa.PrivateKey{}, rsa.PublicKey{}) //nolint:exhaustruct
	require.Equal(t, "RSASSA-PSS", rsapss.Name())
	require.Equal(t, "sha256", rsapss.Hasher().Name())
}
