package interp

import (
	"encoding/binary"
	"fmt"

	"github.com/tarantool/go-option"
)

// NumberState is the state of numeric parsers: the bytes of the number read so far.
type NumberState = ArrayState[ByteState, byte]

// DropNumberState is the state of numeric parsers that discard the value.
type DropNumberState = ArrayState[ByteState, Unit]

type numberParser[T any] struct {
	bytes   Parser[NumberState, []byte]
	order   binary.ByteOrder
	convert func(order binary.ByteOrder, b []byte) T
}

func newNumber[T any](order binary.ByteOrder, width int,
	convert func(order binary.ByteOrder, b []byte) T) Parser[NumberState, T] {
	return numberParser[T]{
		bytes:   Bytes(width),
		order:   order,
		convert: convert,
	}
}

// U16 returns a parser for a 16-bit unsigned integer in the given byte order.
func U16(order binary.ByteOrder) Parser[NumberState, uint16] {
	return newNumber(order, 2, func(order binary.ByteOrder, b []byte) uint16 { return order.Uint16(b) })
}

// U32 returns a parser for a 32-bit unsigned integer in the given byte order.
func U32(order binary.ByteOrder) Parser[NumberState, uint32] {
	return newNumber(order, 4, func(order binary.ByteOrder, b []byte) uint32 { return order.Uint32(b) })
}

// U64 returns a parser for a 64-bit unsigned integer in the given byte order.
func U64(order binary.ByteOrder) Parser[NumberState, uint64] {
	return newNumber(order, 8, func(order binary.ByteOrder, b []byte) uint64 { return order.Uint64(b) })
}

// I16 returns a parser for a 16-bit two's complement integer in the given byte order.
func I16(order binary.ByteOrder) Parser[NumberState, int16] {
	return newNumber(order, 2, func(order binary.ByteOrder, b []byte) int16 { return int16(order.Uint16(b)) })
}

// I32 returns a parser for a 32-bit two's complement integer in the given byte order.
func I32(order binary.ByteOrder) Parser[NumberState, int32] {
	return newNumber(order, 4, func(order binary.ByteOrder, b []byte) int32 { return int32(order.Uint32(b)) })
}

// I64 returns a parser for a 64-bit two's complement integer in the given byte order.
func I64(order binary.ByteOrder) Parser[NumberState, int64] {
	return newNumber(order, 8, func(order binary.ByteOrder, b []byte) int64 { return int64(order.Uint64(b)) })
}

// UintN returns a parser for an unsigned integer of width 0, 1, 2, 4 or 8 bytes,
// widened to uint64. Width 0 consumes nothing and yields 0.
// It panics on any other width.
func UintN(order binary.ByteOrder, width int) Parser[NumberState, uint64] {
	switch width {
	case 0:
		return newNumber(order, 0, func(binary.ByteOrder, []byte) uint64 { return 0 })
	case 1:
		return newNumber(order, 1, func(_ binary.ByteOrder, b []byte) uint64 { return uint64(b[0]) })
	case 2:
		return newNumber(order, 2, func(order binary.ByteOrder, b []byte) uint64 { return uint64(order.Uint16(b)) })
	case 4:
		return newNumber(order, 4, func(order binary.ByteOrder, b []byte) uint64 { return uint64(order.Uint32(b)) })
	case 8:
		return newNumber(order, 8, func(order binary.ByteOrder, b []byte) uint64 { return order.Uint64(b) })
	default:
		panic(fmt.Sprintf("interp: unsupported integer width %d", width))
	}
}

// Init implements Parser.
func (p numberParser[T]) Init() NumberState {
	return p.bytes.Init()
}

// InitInPlace implements Parser.
func (p numberParser[T]) InitInPlace(state *NumberState) {
	p.bytes.InitInPlace(state)
}

// Parse implements Parser.
func (p numberParser[T]) Parse(state *NumberState, chunk []byte, dst *option.Generic[T]) ([]byte, error) {
	buf := option.None[[]byte]()

	rest, err := p.bytes.Parse(state, chunk, &buf)
	if err != nil {
		return rest, err
	}

	b, ok := buf.Get()
	if !ok {
		return reject(rest)
	}

	*dst = option.Some(p.convert(p.order, b))

	return rest, nil
}

type dropNumberParser struct {
	bytes Parser[DropNumberState, []Unit]
}

func newDropNumber(width int) Parser[DropNumberState, Unit] {
	return dropNumberParser{bytes: DropBytes(width)}
}

// DropU16 returns a parser consuming a 16-bit integer without retaining it.
func DropU16() Parser[DropNumberState, Unit] {
	return newDropNumber(2)
}

// DropU32 returns a parser consuming a 32-bit integer without retaining it.
func DropU32() Parser[DropNumberState, Unit] {
	return newDropNumber(4)
}

// DropU64 returns a parser consuming a 64-bit integer without retaining it.
func DropU64() Parser[DropNumberState, Unit] {
	return newDropNumber(8)
}

// Init implements Parser.
func (p dropNumberParser) Init() DropNumberState {
	return p.bytes.Init()
}

// InitInPlace implements Parser.
func (p dropNumberParser) InitInPlace(state *DropNumberState) {
	p.bytes.InitInPlace(state)
}

// Parse implements Parser.
func (p dropNumberParser) Parse(state *DropNumberState, chunk []byte, dst *option.Generic[Unit]) ([]byte, error) {
	discarded := option.None[[]Unit]()

	rest, err := p.bytes.Parse(state, chunk, &discarded)
	if err != nil {
		return rest, err
	}

	*dst = option.Some(Unit{})

	return rest, nil
}
