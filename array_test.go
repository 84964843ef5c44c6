package interp_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp"
	testingUtils "github.com/tarantool/go-interp/internal/testing"
)

func TestArray_SplitAcrossChunks(t *testing.T) {
	t.Parallel()

	out := testingUtils.Feed(t, interp.Array(interp.Byte(), 3), [][]byte{{0x01}, {0x02, 0x03, 0xff}})

	require.NoError(t, out.Err)
	assert.Equal(t, option.Some([]byte{0x01, 0x02, 0x03}), out.Value)
	assert.Equal(t, []byte{0xff}, out.Leftover)
}

func TestArray(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.Bytes(3), []byte{1, 2, 3, 0xff}, []byte{1, 2, 3}, []byte{0xff})
	requireDone(t, interp.Array(interp.U16(binary.BigEndian), 2), []byte{0, 1, 0, 2, 9}, []uint16{1, 2}, []byte{9})
	requireDone(t, interp.DropBytes(2), []byte{1, 2}, []interp.Unit{{}, {}}, nil)
	requireNeedMore(t, interp.Bytes(4), []byte{1, 2, 3})
}

func TestArray_Empty(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.Bytes(0), []byte{5}, []byte{}, []byte{5})
}

func TestArray_Nested(t *testing.T) {
	t.Parallel()

	p := interp.Array(interp.Bytes(2), 3)

	requireDone(t, p, []byte("abcdefg"), [][]byte{[]byte("ab"), []byte("cd"), []byte("ef")}, []byte("g"))
}

func TestArray_ElementWithoutValue(t *testing.T) {
	t.Parallel()

	requireRejected(t, interp.Array[noValueState, byte](noValue{}, 2), []byte{1, 2})
}

func TestArray_ElementReject(t *testing.T) {
	t.Parallel()

	requireRejected(t, interp.Array(failing(), 2), []byte{1, 2})
}

func TestArray_ParseAfterDone(t *testing.T) {
	t.Parallel()

	p := interp.Bytes(1)
	state := p.Init()
	dst := option.None[[]byte]()

	_, err := p.Parse(&state, []byte{1}, &dst)
	require.NoError(t, err)

	rest, err := p.Parse(&state, []byte{2}, &dst)
	require.ErrorIs(t, err, interp.Reject)
	assert.Equal(t, []byte{2}, rest)
}

func TestArray_InitInPlaceDiscardsPartialInput(t *testing.T) {
	t.Parallel()

	p := interp.Bytes(3)
	state := p.Init()
	dst := option.None[[]byte]()

	_, err := p.Parse(&state, []byte("xy"), &dst)
	require.ErrorIs(t, err, interp.ErrNeedMore)

	p.InitInPlace(&state)

	out := testingUtils.FeedState(t, p, &state, &dst, [][]byte{[]byte("ab"), []byte("cd")})
	require.NoError(t, out.Err)
	assert.Equal(t, option.Some([]byte("abc")), out.Value)
	assert.Equal(t, []byte("d"), out.Leftover)
}

func TestArray_NegativeLength(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "interp: negative array length -1", func() {
		interp.Array(interp.Byte(), -1)
	})
	assert.NotPanics(t, func() { interp.Array(interp.Byte(), 0) })
}
