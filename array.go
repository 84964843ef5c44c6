package interp

import (
	"fmt"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp/bounded"
)

// ArrayState is the state of a fixed-size array parser.
type ArrayState[S, R any] struct {
	buf     bounded.Vec[R]
	elem    S
	elemDst option.Generic[R]
	done    bool
}

type arrayParser[S, R any] struct {
	elem Parser[S, R]
	n    int
}

// Array returns a parser for exactly n consecutive elements, each parsed by elem.
// It panics if n is negative.
func Array[S, R any](elem Parser[S, R], n int) Parser[ArrayState[S, R], []R] {
	if n < 0 {
		panic(fmt.Sprintf("interp: negative array length %d", n))
	}

	return arrayParser[S, R]{elem: elem, n: n}
}

// Bytes returns a parser capturing n bytes.
func Bytes(n int) Parser[ArrayState[ByteState, byte], []byte] {
	return Array(Byte(), n)
}

// DropBytes returns a parser consuming n bytes without retaining them.
func DropBytes(n int) Parser[ArrayState[ByteState, Unit], []Unit] {
	return Array(DropByte(), n)
}

// Init implements Parser.
func (p arrayParser[S, R]) Init() ArrayState[S, R] {
	return ArrayState[S, R]{
		buf:     bounded.New[R](p.n),
		elem:    p.elem.Init(),
		elemDst: option.None[R](),
		done:    false,
	}
}

// InitInPlace implements Parser.
func (p arrayParser[S, R]) InitInPlace(state *ArrayState[S, R]) {
	state.buf.Reset(p.n)
	p.elem.InitInPlace(&state.elem)
	state.elemDst = option.None[R]()
	state.done = false
}

// Parse implements Parser.
func (p arrayParser[S, R]) Parse(state *ArrayState[S, R], chunk []byte, dst *option.Generic[[]R]) ([]byte, error) {
	if state.done {
		return reject(chunk)
	}

	rest := chunk

	for !state.buf.Full() {
		next, err := p.elem.Parse(&state.elem, rest, &state.elemDst)
		if err != nil {
			return next, err
		}

		rest = next

		value, ok := take(&state.elemDst)
		if !ok {
			return reject(rest)
		}

		state.buf.Push(value)
		p.elem.InitInPlace(&state.elem)
	}

	state.done = true
	*dst = option.Some(state.buf.Take())

	return rest, nil
}
