package interp_test

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp"
	"github.com/tarantool/go-interp/bounded"
	"github.com/tarantool/go-interp/hasher"
	testingUtils "github.com/tarantool/go-interp/internal/testing"
)

func newVec() bounded.Vec[byte] {
	return bounded.New[byte](32)
}

func TestObserveBytes_ExactConsumedRange(t *testing.T) {
	t.Parallel()

	p := asParser(interp.ObserveBytes(newVec, bounded.Fold, interp.Pair(interp.Byte(), interp.Bytes(2))))
	data := []byte{1, 2, 3, 9, 9}

	for _, chunks := range testingUtils.Partitions(data) {
		out := testingUtils.Feed(t, p, chunks)
		require.NoError(t, out.Err)

		obs, ok := out.Value.Get()
		require.True(t, ok)
		assert.Equal(t, []byte{1, 2, 3}, obs.Acc.Items(), "chunks %x", chunks)
		assert.Equal(t, option.Some(both(byte(1), []byte{2, 3})), obs.Result)
		assert.Equal(t, []byte{9, 9}, out.Leftover)
	}
}

func TestObserveBytes_FoldsWhileWaiting(t *testing.T) {
	t.Parallel()

	p := interp.ObserveBytes(newVec, bounded.Fold, interp.Bytes(4))
	state := p.Init()
	dst := option.None[interp.Observed[bounded.Vec[byte], []byte]]()

	_, err := p.Parse(&state, []byte{1, 2}, &dst)
	require.ErrorIs(t, err, interp.ErrNeedMore)

	obs, ok := dst.Get()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2}, obs.Acc.Items())
	assert.False(t, obs.Result.IsSome())

	_, err = p.Parse(&state, []byte{}, &dst)
	require.ErrorIs(t, err, interp.ErrNeedMore)

	rest, err := p.Parse(&state, []byte{3, 4, 5}, &dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, rest)

	obs, ok = dst.Get()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, obs.Acc.Items())
	assert.Equal(t, option.Some([]byte{1, 2, 3, 4}), obs.Result)
}

func TestObserveBytes_Digest(t *testing.T) {
	t.Parallel()

	p := asParser(interp.ObserveBytes(
		hasher.Init(hasher.NewSHA256Hasher()),
		hasher.Fold,
		interp.DArray(interp.U16(binary.LittleEndian), interp.Byte(), 16),
	))
	data := []byte{5, 0, 'h', 'e', 'l', 'l', 'o', '!'}
	want := sha256.Sum256(data[:7])

	for _, chunks := range testingUtils.Partitions(data) {
		out := testingUtils.Feed(t, p, chunks)
		require.NoError(t, out.Err)

		obs, ok := out.Value.Get()
		require.True(t, ok)
		assert.Equal(t, want[:], obs.Acc.Sum(nil))
		assert.Equal(t, option.Some([]byte("hello")), obs.Result)
	}
}

func TestObserveBytes_SeededAccumulator(t *testing.T) {
	t.Parallel()

	p := interp.ObserveBytes(hasher.Init(hasher.NewSHA256Hasher()), hasher.Fold, interp.Bytes(3))
	want := sha256.Sum256([]byte("prefix:abc"))

	for _, chunks := range testingUtils.Partitions([]byte("abc")) {
		seed := sha256.New()
		seed.Write([]byte("prefix:"))

		out := testingUtils.FeedParam(t, p, seed, chunks)
		require.NoError(t, out.Err)

		obs, ok := out.Value.Get()
		require.True(t, ok)
		assert.Equal(t, want[:], obs.Acc.Sum(nil))
	}
}

func TestObserveBytes_RejectKeepsObservedPrefix(t *testing.T) {
	t.Parallel()

	p := interp.ObserveBytes(newVec, bounded.Fold, interp.Pair(interp.Bytes(2), failing()))
	state := p.Init()
	dst := option.None[interp.Observed[bounded.Vec[byte], interp.Both[[]byte, byte]]]()

	_, err := p.Parse(&state, []byte{1, 2}, &dst)
	require.ErrorIs(t, err, interp.ErrNeedMore)

	_, err = p.Parse(&state, []byte{3}, &dst)
	require.ErrorIs(t, err, interp.Reject)

	obs, ok := dst.Get()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2}, obs.Acc.Items())
}
