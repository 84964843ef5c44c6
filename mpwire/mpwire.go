// Package mpwire parses a subset of MessagePack incrementally, using the
// combinators of package interp.
//
// Every parser accepts all wire forms of its type, not only the most compact
// one, and rejects any other marker.
package mpwire

import (
	"encoding/binary"
	"math"

	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/tarantool/go-interp"
)

// HeaderState is the state of a marker continuation that reads a big-endian
// integer of marker-dependent width.
type HeaderState = interp.ActionState[interp.NumberState, uint64]

// UintState is the state of Uint parsers.
type UintState = interp.BindState[interp.ByteState, byte, HeaderState, uint64]

// IntState is the state of Int parsers.
type IntState = interp.BindState[interp.ByteState, byte, HeaderState, int64]

// BoolState is the state of Bool parsers.
type BoolState = interp.ActionState[interp.ByteState, byte]

// NilState is the state of Nil parsers.
type NilState = interp.ActionState[interp.ByteState, byte]

// BytesState is the length-prefixed payload of bin and str values.
type BytesState = interp.DArrayState[HeaderState, uint64, interp.ByteState, byte]

// BinState is the state of Bin parsers.
type BinState = interp.BindState[interp.ByteState, byte, BytesState, []byte]

// StrState is the state of Str parsers.
type StrState = interp.ActionState[BinState, []byte]

// header reads a big-endian integer of the given width and converts it with f.
func header[T any](width int, f func(uint64) (T, bool)) interp.Parser[HeaderState, T] {
	return interp.Action(interp.UintN(binary.BigEndian, width), func(v *uint64) (T, bool) {
		return f(*v)
	})
}

// inline yields a value carried by the marker itself, consuming nothing more.
func inline[T any](v T) interp.Parser[HeaderState, T] {
	return header(0, func(uint64) (T, bool) { return v, true })
}

func identity(v uint64) (uint64, bool) {
	return v, true
}

// Uint returns a parser for a non-negative integer: positive fixint or
// uint 8/16/32/64.
func Uint() interp.Parser[UintState, uint64] {
	return interp.Bind(interp.Byte(), uintHeader)
}

func uintHeader(marker byte) (interp.Parser[HeaderState, uint64], bool) {
	switch {
	case marker <= msgpcode.PosFixedNumHigh:
		return inline(uint64(marker)), true
	case marker == msgpcode.Uint8:
		return header(1, identity), true
	case marker == msgpcode.Uint16:
		return header(2, identity), true
	case marker == msgpcode.Uint32:
		return header(4, identity), true
	case marker == msgpcode.Uint64:
		return header(8, identity), true
	default:
		return nil, false
	}
}

// Int returns a parser for an integer in any of the fixint, int or uint forms.
// Unsigned values above math.MaxInt64 reject.
func Int() interp.Parser[IntState, int64] {
	return interp.Bind(interp.Byte(), intHeader)
}

func intHeader(marker byte) (interp.Parser[HeaderState, int64], bool) {
	switch {
	case msgpcode.IsFixedNum(marker):
		return inline(int64(int8(marker))), true
	case marker == msgpcode.Int8:
		return header(1, func(v uint64) (int64, bool) { return int64(int8(v)), true }), true
	case marker == msgpcode.Int16:
		return header(2, func(v uint64) (int64, bool) { return int64(int16(v)), true }), true
	case marker == msgpcode.Int32:
		return header(4, func(v uint64) (int64, bool) { return int64(int32(v)), true }), true
	case marker == msgpcode.Int64:
		return header(8, func(v uint64) (int64, bool) { return int64(v), true }), true
	}

	width, ok := lengthWidth(marker, msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32)
	if marker == msgpcode.Uint64 {
		width, ok = 8, true
	}

	if !ok {
		return nil, false
	}

	return header(width, func(v uint64) (int64, bool) {
		if v > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	}), true
}

// Bool returns a parser for true and false.
func Bool() interp.Parser[BoolState, bool] {
	return interp.Action(interp.Byte(), func(marker *byte) (bool, bool) {
		switch *marker {
		case msgpcode.True:
			return true, true
		case msgpcode.False:
			return false, true
		default:
			return false, false
		}
	})
}

// Nil returns a parser for nil.
func Nil() interp.Parser[NilState, interp.Unit] {
	return interp.Action(interp.Byte(), func(marker *byte) (interp.Unit, bool) {
		return interp.Unit{}, *marker == msgpcode.Nil
	})
}

func lengthWidth(marker, m8, m16, m32 byte) (int, bool) {
	switch marker {
	case m8:
		return 1, true
	case m16:
		return 2, true
	case m32:
		return 4, true
	default:
		return 0, false
	}
}

// Bin returns a parser for a binary value of at most maxLen bytes.
func Bin(maxLen int) interp.Parser[BinState, []byte] {
	return interp.Bind(interp.Byte(), func(marker byte) (interp.Parser[BytesState, []byte], bool) {
		width, ok := lengthWidth(marker, msgpcode.Bin8, msgpcode.Bin16, msgpcode.Bin32)
		if !ok {
			return nil, false
		}

		return interp.DArray(header(width, identity), interp.Byte(), maxLen), true
	})
}

// Str returns a parser for a string of at most maxLen bytes.
func Str(maxLen int) interp.Parser[StrState, string] {
	raw := interp.Bind(interp.Byte(), func(marker byte) (interp.Parser[BytesState, []byte], bool) {
		if msgpcode.IsFixedString(marker) {
			return interp.DArray(inline(uint64(marker&msgpcode.FixedStrMask)), interp.Byte(), maxLen), true
		}

		width, ok := lengthWidth(marker, msgpcode.Str8, msgpcode.Str16, msgpcode.Str32)
		if !ok {
			return nil, false
		}

		return interp.DArray(header(width, identity), interp.Byte(), maxLen), true
	})

	return interp.MoveAction(raw, func(b []byte) (string, bool) {
		return string(b), true
	})
}

// Array returns a parser for an array of at most maxLen elements parsed by elem.
func Array[S, R any](
	elem interp.Parser[S, R],
	maxLen int,
) interp.Parser[interp.BindState[interp.ByteState, byte, interp.DArrayState[HeaderState, uint64, S, R], []R], []R] {
	return interp.Bind(interp.Byte(), func(marker byte) (interp.Parser[interp.DArrayState[HeaderState, uint64, S, R], []R], bool) {
		if msgpcode.IsFixedArray(marker) {
			return interp.DArray(inline(uint64(marker&msgpcode.FixedArrayMask)), elem, maxLen), true
		}

		var width int

		switch marker {
		case msgpcode.Array16:
			width = 2
		case msgpcode.Array32:
			width = 4
		default:
			return nil, false
		}

		return interp.DArray(header(width, identity), elem, maxLen), true
	})
}
