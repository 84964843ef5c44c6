package interp

import (
	"fmt"
	"math"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp/bounded"
)

// Integer is the set of integer types a length prefix may decode to.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// toIndex converts a decoded length to an element count no greater than limit.
func toIndex[N Integer](n N, limit int) (int, bool) {
	if n < 0 {
		return 0, false
	}

	if uint64(n) > math.MaxInt {
		return 0, false
	}

	idx := int(n)
	if idx > limit {
		return 0, false
	}

	return idx, true
}

type darrayPhase uint8

const (
	darrayLength darrayPhase = iota
	darrayElements
	darrayDone
)

// DArrayState is the state of a length-prefixed array parser.
type DArrayState[SN, RN, S, R any] struct {
	phase     darrayPhase
	length    SN
	lengthDst option.Generic[RN]
	count     int
	buf       bounded.Vec[R]
	elem      S
	elemDst   option.Generic[R]
}

type darrayParser[SN any, RN Integer, S, R any] struct {
	length Parser[SN, RN]
	elem   Parser[S, R]
	max    int
}

// DArray returns a parser for a length prefix followed by that many elements.
// Lengths greater than max reject before any element byte is consumed.
// It panics if max is negative.
func DArray[SN any, RN Integer, S, R any](
	length Parser[SN, RN],
	elem Parser[S, R],
	max int,
) Parser[DArrayState[SN, RN, S, R], []R] {
	if max < 0 {
		panic(fmt.Sprintf("interp: negative array capacity %d", max))
	}

	return darrayParser[SN, RN, S, R]{length: length, elem: elem, max: max}
}

// Init implements Parser.
func (p darrayParser[SN, RN, S, R]) Init() DArrayState[SN, RN, S, R] {
	return DArrayState[SN, RN, S, R]{
		phase:     darrayLength,
		length:    p.length.Init(),
		lengthDst: option.None[RN](),
		count:     0,
		buf:       bounded.New[R](p.max),
		elem:      p.elem.Init(),
		elemDst:   option.None[R](),
	}
}

// InitInPlace implements Parser.
func (p darrayParser[SN, RN, S, R]) InitInPlace(state *DArrayState[SN, RN, S, R]) {
	state.phase = darrayLength
	p.length.InitInPlace(&state.length)
	state.lengthDst = option.None[RN]()
	state.count = 0
	state.buf.Reset(p.max)
	p.elem.InitInPlace(&state.elem)
	state.elemDst = option.None[R]()
}

// Parse implements Parser.
func (p darrayParser[SN, RN, S, R]) Parse(
	state *DArrayState[SN, RN, S, R],
	chunk []byte,
	dst *option.Generic[[]R],
) ([]byte, error) {
	rest := chunk

	if state.phase == darrayLength {
		next, err := p.length.Parse(&state.length, rest, &state.lengthDst)
		if err != nil {
			return next, err
		}

		rest = next

		n, ok := take(&state.lengthDst)
		if !ok {
			return reject(rest)
		}

		count, ok := toIndex(n, p.max)
		if !ok {
			state.phase = darrayDone

			return reject(rest)
		}

		state.count = count
		state.phase = darrayElements
	}

	if state.phase == darrayDone {
		return reject(rest)
	}

	for state.buf.Len() < state.count {
		next, err := p.elem.Parse(&state.elem, rest, &state.elemDst)
		if err != nil {
			return next, err
		}

		rest = next

		value, ok := take(&state.elemDst)
		if !ok || !state.buf.Push(value) {
			return reject(rest)
		}

		p.elem.InitInPlace(&state.elem)
	}

	state.phase = darrayDone
	*dst = option.Some(state.buf.Take())

	return rest, nil
}
