package interp

import (
	"github.com/tarantool/go-option"
)

// Both holds the results of the two halves of a Pair.
// A half that has not completed yet is absent.
type Both[A, B any] struct {
	First  option.Generic[A]
	Second option.Generic[B]
}

type pairPhase uint8

const (
	pairInit pairPhase = iota
	pairFirst
	pairSecond
	pairDone
)

// PairState is the state of a Pair parser.
type PairState[SA, SB any] struct {
	phase  pairPhase
	first  SA
	second SB
}

type pairParser[SA, RA, SB, RB any] struct {
	first  Parser[SA, RA]
	second Parser[SB, RB]
}

// Pair returns a parser running first and then second on the rest of the input.
// Both partial results live in the destination while parsing.
func Pair[SA, RA, SB, RB any](first Parser[SA, RA], second Parser[SB, RB]) Parser[PairState[SA, SB], Both[RA, RB]] {
	return pairParser[SA, RA, SB, RB]{first: first, second: second}
}

// Init implements Parser.
func (p pairParser[SA, RA, SB, RB]) Init() PairState[SA, SB] {
	return PairState[SA, SB]{
		phase:  pairInit,
		first:  p.first.Init(),
		second: p.second.Init(),
	}
}

// InitInPlace implements Parser.
func (p pairParser[SA, RA, SB, RB]) InitInPlace(state *PairState[SA, SB]) {
	state.phase = pairInit
	p.first.InitInPlace(&state.first)
	p.second.InitInPlace(&state.second)
}

// Parse implements Parser.
func (p pairParser[SA, RA, SB, RB]) Parse(
	state *PairState[SA, SB],
	chunk []byte,
	dst *option.Generic[Both[RA, RB]],
) ([]byte, error) {
	if state.phase == pairDone {
		return reject(chunk)
	}

	both := Both[RA, RB]{First: option.None[RA](), Second: option.None[RB]()}
	if state.phase == pairInit {
		state.phase = pairFirst
	} else if held, ok := dst.Get(); ok {
		both = held
	}

	rest, err := p.parse(state, chunk, &both)
	*dst = option.Some(both)

	return rest, err
}

func (p pairParser[SA, RA, SB, RB]) parse(state *PairState[SA, SB], chunk []byte, both *Both[RA, RB]) ([]byte, error) {
	rest := chunk

	if state.phase == pairFirst {
		next, err := p.first.Parse(&state.first, rest, &both.First)
		if err != nil {
			return next, err
		}

		rest = next
		state.phase = pairSecond
	}

	next, err := p.second.Parse(&state.second, rest, &both.Second)
	if err != nil {
		return next, err
	}

	state.phase = pairDone

	return next, nil
}
