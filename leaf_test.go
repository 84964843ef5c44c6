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

func TestByte(t *testing.T) {
	t.Parallel()

	out := testingUtils.Feed(t, interp.Byte(), [][]byte{{0x41}, {}})

	require.NoError(t, out.Err)
	assert.Equal(t, option.Some[byte](0x41), out.Value)
	assert.Empty(t, out.Leftover)
	assert.Equal(t, 1, out.Calls)
}

func TestByte_EmptyChunk(t *testing.T) {
	t.Parallel()

	p := interp.Byte()
	state := p.Init()
	dst := option.None[byte]()

	for range 3 {
		rest, err := p.Parse(&state, []byte{}, &dst)
		require.ErrorIs(t, err, interp.ErrNeedMore)
		assert.Empty(t, rest)
		assert.False(t, dst.IsSome())
	}

	rest, err := p.Parse(&state, []byte{7, 8}, &dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{8}, rest)
	assert.Equal(t, option.Some[byte](7), dst)
}

func TestDropByte(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.DropByte(), []byte{0xaa, 0xbb}, interp.Unit{}, []byte{0xbb})
}

func TestPure(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.Pure("x"), []byte{1, 2}, "x", []byte{1, 2})
	requireDone(t, interp.Pure(42), nil, 42, nil)
}

func TestUnsigned(t *testing.T) {
	t.Parallel()

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xff}

	requireDone(t, interp.U16(binary.LittleEndian), data[:3], uint16(0x0201), []byte{0x03})
	requireDone(t, interp.U16(binary.BigEndian), data[:3], uint16(0x0102), []byte{0x03})
	requireDone(t, interp.U32(binary.LittleEndian), data[:5], uint32(0x04030201), []byte{0x05})
	requireDone(t, interp.U32(binary.BigEndian), data[:5], uint32(0x01020304), []byte{0x05})
	requireDone(t, interp.U64(binary.LittleEndian), data, uint64(0x0807060504030201), []byte{0xff})
	requireDone(t, interp.U64(binary.BigEndian), data, uint64(0x0102030405060708), []byte{0xff})
}

func TestSigned(t *testing.T) {
	t.Parallel()

	requireDone(t, interp.I16(binary.LittleEndian), []byte{0xfe, 0xff}, int16(-2), nil)
	requireDone(t, interp.I32(binary.BigEndian), []byte{0xff, 0xff, 0xff, 0xfe}, int32(-2), nil)
	requireDone(t, interp.I64(binary.LittleEndian), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, int64(-1), nil)
	requireDone(t, interp.I16(binary.BigEndian), []byte{0x7f, 0xff}, int16(0x7fff), nil)
}

func TestUintN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		data     []byte
		want     uint64
		leftover []byte
	}{
		{"zero width consumes nothing", 0, []byte{0xaa}, 0, []byte{0xaa}},
		{"one byte", 1, []byte{0x7f, 0xaa}, 0x7f, []byte{0xaa}},
		{"two bytes", 2, []byte{0x01, 0x00}, 0x100, nil},
		{"four bytes", 4, []byte{0x00, 0x01, 0x00, 0x00}, 0x10000, nil},
		{"eight bytes", 8, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<64 - 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			requireDone(t, interp.UintN(binary.BigEndian, tt.width), tt.data, tt.want, tt.leftover)
		})
	}
}

func TestUintN_UnsupportedWidth(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { interp.UintN(binary.BigEndian, 3) })
}

func TestNumber_NeedMore(t *testing.T) {
	t.Parallel()

	requireNeedMore(t, interp.U32(binary.LittleEndian), []byte{1, 2, 3})
	requireNeedMore(t, interp.DropU64(), []byte{1, 2, 3, 4, 5, 6, 7})
}

func TestDropUnsigned(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}

	requireDone(t, interp.DropU16(), data[:3], interp.Unit{}, data[2:3])
	requireDone(t, interp.DropU32(), data[:5], interp.Unit{}, data[4:5])
	requireDone(t, interp.DropU64(), data, interp.Unit{}, data[8:])
}

func TestNumber_Reuse(t *testing.T) {
	t.Parallel()

	p := interp.U16(binary.BigEndian)
	state := p.Init()
	dst := option.None[uint16]()

	_, err := p.Parse(&state, []byte{0x12}, &dst)
	require.ErrorIs(t, err, interp.ErrNeedMore)

	p.InitInPlace(&state)

	out := testingUtils.FeedState(t, p, &state, &dst, [][]byte{{0xab}, {0xcd}})
	require.NoError(t, out.Err)
	assert.Equal(t, option.Some[uint16](0xabcd), out.Value)

	p.InitInPlace(&state)

	out = testingUtils.FeedState(t, p, &state, &dst, [][]byte{{0x00, 0x01}})
	require.NoError(t, out.Err)
	assert.Equal(t, option.Some[uint16](1), out.Value)
}
