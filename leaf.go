package interp

import (
	"github.com/tarantool/go-option"
)

// ByteState is the state of single byte parsers. It carries nothing.
type ByteState struct{}

type byteParser struct{}

// Byte returns a parser capturing one byte.
func Byte() Parser[ByteState, byte] {
	return byteParser{}
}

// Init implements Parser.
func (byteParser) Init() ByteState {
	return ByteState{}
}

// InitInPlace implements Parser.
func (byteParser) InitInPlace(state *ByteState) {
	*state = ByteState{}
}

// Parse implements Parser.
func (byteParser) Parse(_ *ByteState, chunk []byte, dst *option.Generic[byte]) ([]byte, error) {
	if len(chunk) == 0 {
		return needMore(chunk)
	}

	*dst = option.Some(chunk[0])

	return chunk[1:], nil
}

type dropByteParser struct{}

// DropByte returns a parser consuming one byte without retaining it.
func DropByte() Parser[ByteState, Unit] {
	return dropByteParser{}
}

// Init implements Parser.
func (dropByteParser) Init() ByteState {
	return ByteState{}
}

// InitInPlace implements Parser.
func (dropByteParser) InitInPlace(state *ByteState) {
	*state = ByteState{}
}

// Parse implements Parser.
func (dropByteParser) Parse(_ *ByteState, chunk []byte, dst *option.Generic[Unit]) ([]byte, error) {
	if len(chunk) == 0 {
		return needMore(chunk)
	}

	*dst = option.Some(Unit{})

	return chunk[1:], nil
}

// PureState is the state of Pure parsers.
type PureState struct{}

type pureParser[R any] struct {
	value R
}

// Pure returns a parser that completes immediately with value and consumes nothing.
func Pure[R any](value R) Parser[PureState, R] {
	return pureParser[R]{value: value}
}

// Init implements Parser.
func (pureParser[R]) Init() PureState {
	return PureState{}
}

// InitInPlace implements Parser.
func (pureParser[R]) InitInPlace(state *PureState) {
	*state = PureState{}
}

// Parse implements Parser.
func (p pureParser[R]) Parse(_ *PureState, chunk []byte, dst *option.Generic[R]) ([]byte, error) {
	*dst = option.Some(p.value)

	return chunk, nil
}
