package interp_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp"
	"github.com/tarantool/go-interp/bounded"
	testingUtils "github.com/tarantool/go-interp/internal/testing"
)

func TestAction(t *testing.T) {
	t.Parallel()

	double := interp.Action(interp.U16(binary.BigEndian), func(v *uint16) (int, bool) {
		return int(*v) * 2, true
	})

	requireDone(t, double, []byte{0x01, 0x00, 0xff}, 512, []byte{0xff})
	requireNeedMore(t, double, []byte{0x01})
}

func TestAction_Refused(t *testing.T) {
	t.Parallel()

	even := interp.Action(interp.Byte(), func(b *byte) (byte, bool) {
		return *b, *b%2 == 0
	})

	requireDone(t, even, []byte{4}, byte(4), nil)
	requireRejected(t, even, []byte{3})
}

func TestMoveAction(t *testing.T) {
	t.Parallel()

	upper := interp.MoveAction(interp.Bytes(3), func(b []byte) (string, bool) {
		return strings.ToUpper(string(b)), true
	})

	requireDone(t, upper, []byte("abcd"), "ABC", []byte("d"))
}

func TestAction_DoneRejects(t *testing.T) {
	t.Parallel()

	p := interp.MoveAction(interp.Byte(), func(b byte) (byte, bool) { return b, true })
	state := p.Init()
	dst := option.None[byte]()

	_, err := p.Parse(&state, []byte{1}, &dst)
	require.NoError(t, err)

	_, err = p.Parse(&state, []byte{2}, &dst)
	require.ErrorIs(t, err, interp.Reject)
}

func TestActionWith(t *testing.T) {
	t.Parallel()

	scale := interp.ActionWith(interp.Byte(), func(b *byte, factor int) (int, bool) {
		return int(*b) * factor, factor != 0
	})

	for _, chunks := range testingUtils.Partitions([]byte{3, 9}) {
		out := testingUtils.FeedParam(t, scale, 5, chunks)

		require.NoError(t, out.Err)
		assert.Equal(t, option.Some(15), out.Value)
		assert.Equal(t, []byte{9}, out.Leftover)
	}

	out := testingUtils.FeedParam(t, scale, 0, [][]byte{{3}})
	require.ErrorIs(t, out.Err, interp.Reject)
}

func TestActionWith_MissingContext(t *testing.T) {
	t.Parallel()

	p := interp.ActionWith(interp.Byte(), func(b *byte, _ string) (byte, bool) { return *b, true })

	requireRejected(t, asParser(p), []byte{1})
}

func TestActionWith_ContextIsConsumed(t *testing.T) {
	t.Parallel()

	calls := 0
	p := interp.ActionWith(interp.Byte(), func(b *byte, ctx string) (string, bool) {
		calls++

		return ctx + string(*b), true
	})

	var state interp.ContextActionState[interp.ByteState, byte, string]

	dst := option.None[string]()
	p.InitParam("k=", &state, &dst)

	out := testingUtils.FeedState(t, asParser(p), &state, &dst, [][]byte{{'v'}})
	require.NoError(t, out.Err)
	assert.Equal(t, option.Some("k=v"), out.Value)

	// The context was moved into the first call; the completed state rejects.
	_, err := p.Parse(&state, []byte{'w'}, &dst)
	require.ErrorIs(t, err, interp.Reject)
	assert.Equal(t, 1, calls)
}

func TestParamAction(t *testing.T) {
	t.Parallel()

	observed := interp.ObserveBytes(
		func() bounded.Vec[byte] { return bounded.New[byte](8) },
		bounded.Fold,
		interp.Bytes(2),
	)

	size := interp.ParamAction(observed, func(o *interp.Observed[bounded.Vec[byte], []byte]) (int, bool) {
		return o.Acc.Len(), true
	})

	seed := bounded.New[byte](8)
	seed.Extend('x', 'y', 'z')

	out := testingUtils.FeedParam(t, size, seed, [][]byte{{'a'}, {'b', 'c'}})
	require.NoError(t, out.Err)
	assert.Equal(t, option.Some(5), out.Value)
	assert.Equal(t, []byte("c"), out.Leftover)
}

func TestParamMoveAction(t *testing.T) {
	t.Parallel()

	observed := interp.ObserveBytes(
		func() bounded.Vec[byte] { return bounded.New[byte](8) },
		bounded.Fold,
		interp.Bytes(2),
	)

	items := interp.ParamMoveAction(observed, func(o interp.Observed[bounded.Vec[byte], []byte]) (string, bool) {
		return string(o.Acc.Items()), true
	})

	for _, chunks := range testingUtils.Partitions([]byte("abc")) {
		seed := bounded.New[byte](8)
		seed.Push('>')

		out := testingUtils.FeedParam(t, items, seed, chunks)
		require.NoError(t, out.Err)
		assert.Equal(t, option.Some(">ab"), out.Value)
	}
}
