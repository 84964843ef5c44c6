package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp"
)

func TestLengthLimited(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.LengthLimited(3, interp.Bytes(3)), []byte("abcdef"), []byte("abc"), []byte("def"))
	requireDone(t, interp.LengthLimited(0, interp.Pure(1)), []byte("ab"), 1, []byte("ab"))
	requireDone(
		t,
		interp.LengthLimited(4, interp.DArray(interp.Byte(), interp.Byte(), 8)),
		[]byte{3, 'a', 'b', 'c', 'z'},
		[]byte("abc"),
		[]byte("z"),
	)
	requireNeedMore(t, interp.LengthLimited(3, interp.Bytes(3)), []byte("ab"))
}

func TestLengthLimited_CompletesEarly(t *testing.T) {
	t.Parallel()

	requireRejected(t, interp.LengthLimited(4, interp.Bytes(3)), []byte("abcd"))

	p := interp.LengthLimited(4, interp.Bytes(3))
	state := p.Init()
	dst := option.None[[]byte]()

	rest, err := p.Parse(&state, []byte("abcdef"), &dst)
	require.ErrorIs(t, err, interp.Reject)
	assert.Equal(t, []byte("def"), rest)
}

func TestLengthLimited_SubParserWantsMore(t *testing.T) {
	t.Parallel()

	requireRejected(t, interp.LengthLimited(2, interp.Bytes(3)), []byte("abcd"))
	requireRejected(t, interp.LengthLimited(0, interp.Byte()), []byte("a"))
}

func TestLengthLimited_NeverSeesBeyondLimit(t *testing.T) {
	t.Parallel()

	seen := 0
	p := interp.LengthLimited(2, interp.Action(interp.Bytes(2), func(b *[]byte) (int, bool) {
		seen += len(*b)

		return len(*b), true
	}))

	state := p.Init()
	dst := option.None[int]()

	rest, err := p.Parse(&state, []byte("abcdef"), &dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("cdef"), rest)
	assert.Equal(t, 2, seen)
}

func TestLengthLimited_RejectPropagates(t *testing.T) {
	t.Parallel()

	p := interp.LengthLimited(3, interp.Pair(interp.Byte(), failing()))
	state := p.Init()
	dst := option.None[interp.Both[byte, byte]]()

	rest, err := p.Parse(&state, []byte{1, 2, 3, 4}, &dst)
	require.ErrorIs(t, err, interp.Reject)
	assert.Equal(t, []byte{3, 4}, rest)
}
