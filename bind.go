package interp

import (
	"github.com/tarantool/go-option"
)

type bindPhase uint8

const (
	bindFirst bindPhase = iota
	bindSecond
	bindDone
)

// BindState is the state of a Bind parser.
type BindState[SA, RA, SB, RB any] struct {
	phase    bindPhase
	first    SA
	firstDst option.Generic[RA]
	cont     Parser[SB, RB]
	second   SB
}

type bindParser[SA, RA, SB, RB any] struct {
	first Parser[SA, RA]
	next  func(RA) (Parser[SB, RB], bool)
}

// Bind returns a parser running first, then the parser next builds from its result.
// The continuation state is constructed in place. When next returns false the
// parse rejects.
func Bind[SA, RA, SB, RB any](
	first Parser[SA, RA],
	next func(RA) (Parser[SB, RB], bool),
) Parser[BindState[SA, RA, SB, RB], RB] {
	return bindParser[SA, RA, SB, RB]{first: first, next: next}
}

// Init implements Parser.
func (p bindParser[SA, RA, SB, RB]) Init() BindState[SA, RA, SB, RB] {
	return BindState[SA, RA, SB, RB]{
		phase:    bindFirst,
		first:    p.first.Init(),
		firstDst: option.None[RA](),
	}
}

// InitInPlace implements Parser.
func (p bindParser[SA, RA, SB, RB]) InitInPlace(state *BindState[SA, RA, SB, RB]) {
	state.phase = bindFirst
	p.first.InitInPlace(&state.first)
	state.firstDst = option.None[RA]()
	state.cont = nil
}

// Parse implements Parser.
func (p bindParser[SA, RA, SB, RB]) Parse(
	state *BindState[SA, RA, SB, RB],
	chunk []byte,
	dst *option.Generic[RB],
) ([]byte, error) {
	rest := chunk

	switch state.phase {
	case bindFirst:
		next, err := p.first.Parse(&state.first, rest, &state.firstDst)
		if err != nil {
			return next, err
		}

		rest = next

		value, ok := take(&state.firstDst)
		if !ok {
			return reject(rest)
		}

		cont, ok := p.next(value)
		if !ok {
			state.phase = bindDone

			return reject(rest)
		}

		state.cont = cont
		cont.InitInPlace(&state.second)
		state.phase = bindSecond
	case bindSecond:
	case bindDone:
		return reject(rest)
	}

	next, err := state.cont.Parse(&state.second, rest, dst)
	if err != nil {
		return next, err
	}

	state.phase = bindDone

	return next, nil
}

// ParamBindState is the state of a ParamBind parser.
type ParamBindState[SA, RA, SB any] struct {
	phase    bindPhase
	first    SA
	firstDst option.Generic[RA]
	second   SB
}

type paramBindParser[SA, RA, SB, RB any] struct {
	first  Parser[SA, RA]
	second ParamParser[SB, RB, RA]
}

// ParamBind returns a parser running first and handing its result to
// second.InitParam. The continuation is fixed, so no parser is built at runtime.
func ParamBind[SA, RA, SB, RB any](
	first Parser[SA, RA],
	second ParamParser[SB, RB, RA],
) Parser[ParamBindState[SA, RA, SB], RB] {
	return paramBindParser[SA, RA, SB, RB]{first: first, second: second}
}

// Init implements Parser.
func (p paramBindParser[SA, RA, SB, RB]) Init() ParamBindState[SA, RA, SB] {
	return ParamBindState[SA, RA, SB]{
		phase:    bindFirst,
		first:    p.first.Init(),
		firstDst: option.None[RA](),
		second:   p.second.Init(),
	}
}

// InitInPlace implements Parser.
func (p paramBindParser[SA, RA, SB, RB]) InitInPlace(state *ParamBindState[SA, RA, SB]) {
	state.phase = bindFirst
	p.first.InitInPlace(&state.first)
	state.firstDst = option.None[RA]()
	p.second.InitInPlace(&state.second)
}

// Parse implements Parser.
func (p paramBindParser[SA, RA, SB, RB]) Parse(
	state *ParamBindState[SA, RA, SB],
	chunk []byte,
	dst *option.Generic[RB],
) ([]byte, error) {
	rest := chunk

	switch state.phase {
	case bindFirst:
		next, err := p.first.Parse(&state.first, rest, &state.firstDst)
		if err != nil {
			return next, err
		}

		rest = next

		value, ok := take(&state.firstDst)
		if !ok {
			return reject(rest)
		}

		p.second.InitParam(value, &state.second, dst)
		state.phase = bindSecond
	case bindSecond:
	case bindDone:
		return reject(rest)
	}

	next, err := p.second.Parse(&state.second, rest, dst)
	if err != nil {
		return next, err
	}

	state.phase = bindDone

	return next, nil
}

type paramBindParamParser[SA, RA, SB, RB, P any] struct {
	paramBindParser[SA, RA, SB, RB]

	seeded ParamParser[SA, RA, P]
}

// ParamBindParam is ParamBind over a parameterized first parser. The result is
// itself a ParamParser forwarding its parameter to first.
func ParamBindParam[SA, RA, SB, RB, P any](
	first ParamParser[SA, RA, P],
	second ParamParser[SB, RB, RA],
) ParamParser[ParamBindState[SA, RA, SB], RB, P] {
	return paramBindParamParser[SA, RA, SB, RB, P]{
		paramBindParser: paramBindParser[SA, RA, SB, RB]{first: first, second: second},
		seeded:          first,
	}
}

// InitParam implements ParamParser.
func (p paramBindParamParser[SA, RA, SB, RB, P]) InitParam(
	param P,
	state *ParamBindState[SA, RA, SB],
	_ *option.Generic[RB],
) {
	p.InitInPlace(state)
	p.seeded.InitParam(param, &state.first, &state.firstDst)
}
