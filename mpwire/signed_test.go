package mpwire_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-interp"
	"github.com/tarantool/go-interp/crypto"
	"github.com/tarantool/go-interp/hasher"
	"github.com/tarantool/go-interp/internal/mocks"
	testingUtils "github.com/tarantool/go-interp/internal/testing"
	"github.com/tarantool/go-interp/mpwire"
)

func newRSAPSS(t *testing.T) crypto.RSAPSS {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return crypto.NewRSAPSS(*privateKey, privateKey.PublicKey)
}

// twoWaySplits returns the envelope as one chunk, split at every position, and
// one byte at a time.
func twoWaySplits(data []byte) [][][]byte {
	out := [][][]byte{{data}}
	for i := 1; i < len(data); i++ {
		out = append(out, [][]byte{data[:i], data[i:]})
	}

	return append(out, testingUtils.OneByteChunks(data))
}

func TestSigned(t *testing.T) {
	t.Parallel()

	rsapss := newRSAPSS(t)
	payload := []byte("config: {replicas: 3}")

	envelope, err := mpwire.Seal(rsapss, payload)
	require.NoError(t, err)

	trailing := append(bytes.Clone(envelope), 0xc0)

	for _, chunks := range twoWaySplits(trailing) {
		out := testingUtils.Feed(t, mpwire.Signed(rsapss, 64, 512), chunks)

		require.NoError(t, out.Err)
		assert.Equal(t, option.Some(payload), out.Value)
		assert.Equal(t, []byte{0xc0}, out.Leftover)
	}
}

func TestSigned_EnvelopeLayout(t *testing.T) {
	t.Parallel()

	rsapss := newRSAPSS(t)

	envelope, err := mpwire.Seal(rsapss, []byte("x"))
	require.NoError(t, err)

	var fields [][]byte

	require.NoError(t, msgpack.Unmarshal(envelope, &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, []byte("x"), fields[0])

	field, err := msgpack.Marshal([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, rsapss.Verify(field, fields[1]))
}

func TestSigned_Tampered(t *testing.T) {
	t.Parallel()

	rsapss := newRSAPSS(t)
	payload := []byte("payload")

	envelope, err := mpwire.Seal(rsapss, payload)
	require.NoError(t, err)

	tests := []struct {
		name  string
		index int
	}{
		{"payload byte", 3},
		{"payload length", 2},
		{"signature byte", len(envelope) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := bytes.Clone(envelope)
			data[tt.index] ^= 0x01

			out := testingUtils.Feed(t, mpwire.Signed(rsapss, 64, 512), [][]byte{data})
			require.ErrorIs(t, out.Err, interp.Reject)
		})
	}
}

func TestSigned_Limits(t *testing.T) {
	t.Parallel()

	rsapss := newRSAPSS(t)

	envelope, err := mpwire.Seal(rsapss, []byte("too long"))
	require.NoError(t, err)

	out := testingUtils.Feed(t, mpwire.Signed(rsapss, 4, 512), [][]byte{envelope})
	require.ErrorIs(t, out.Err, interp.Reject)

	out = testingUtils.Feed(t, mpwire.Signed(rsapss, 64, 16), [][]byte{envelope})
	require.ErrorIs(t, out.Err, interp.Reject)

	out = testingUtils.Feed(t, mpwire.Signed(rsapss, 64, 512), [][]byte{{0x93}})
	require.ErrorIs(t, out.Err, interp.Reject)
}

func TestSeal_NilPayload(t *testing.T) {
	t.Parallel()

	_, err := mpwire.Seal(newRSAPSS(t), nil)
	require.ErrorIs(t, err, mpwire.ErrPayloadIsNil)
}

func TestSeal_SignerError(t *testing.T) {
	t.Parallel()

	errSign := errors.New("sign error")
	payload := []byte("payload")

	signer := mocks.NewSignerMock(t).SignMock.Expect(marshal(t, payload)).Return(nil, errSign)

	envelope, err := mpwire.Seal(signer, payload)
	require.ErrorIs(t, err, errSign)
	require.ErrorContains(t, err, "failed to sign payload")
	assert.Nil(t, envelope)
}

func TestSigned_VerifierError(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	signer := mocks.NewSignerMock(mc).SignMock.Return([]byte("signature"), nil)
	verifier := mocks.NewVerifierMock(mc).
		HasherMock.Return(hasher.NewSHA256Hasher()).
		VerifyDigestMock.Return(errors.New("verify error"))

	envelope, err := mpwire.Seal(signer, []byte("payload"))
	require.NoError(t, err)

	p := mpwire.Signed(verifier, 64, 64)

	for _, chunks := range twoWaySplits(envelope) {
		out := testingUtils.Feed(t, p, chunks)
		require.ErrorIs(t, out.Err, interp.Reject, "chunks %x", chunks)
	}
}

func TestSigned_VerifiesFieldDigest(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)
	payload := []byte("config: {replicas: 3}")
	field := marshal(t, payload)
	digest := sha256.Sum256(field)

	signer := mocks.NewSignerMock(mc).SignMock.Expect(field).Return([]byte("signature"), nil)
	verifier := mocks.NewVerifierMock(mc).
		HasherMock.Return(hasher.NewSHA256Hasher()).
		VerifyDigestMock.Expect(digest[:], []byte("signature")).Return(nil)

	envelope, err := mpwire.Seal(signer, payload)
	require.NoError(t, err)

	p := mpwire.Signed(verifier, 64, 64)

	for _, chunks := range twoWaySplits(envelope) {
		out := testingUtils.Feed(t, p, chunks)

		require.NoError(t, out.Err, "chunks %x", chunks)
		assert.Equal(t, option.Some(payload), out.Value)
		assert.Empty(t, out.Leftover)
	}

	assert.Equal(t, uint64(1), verifier.HasherAfterCounter())
	assert.Equal(t, uint64(len(envelope)+1), verifier.VerifyDigestAfterCounter())
}
