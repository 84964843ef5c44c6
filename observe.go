package interp

import (
	"github.com/tarantool/go-option"
)

// Observed is the result of ObserveBytes: the accumulator over every byte the
// sub-parser consumed, and the sub-parser result once it completes.
type Observed[X, R any] struct {
	Acc    X
	Result option.Generic[R]
}

// ObserveState is the state of an ObserveBytes parser.
type ObserveState[S any] struct {
	sub    S
	seeded bool
}

type observeParser[S, R, X any] struct {
	init func() X
	fold func(*X, []byte)
	sub  Parser[S, R]
}

// ObserveBytes returns a parser running sub and folding exactly the bytes it
// consumes into an accumulator created by init. InitParam seeds the
// accumulator with a given value instead.
//
// The accumulator lives in the destination, so it is visible while parsing
// and survives a reject of sub.
func ObserveBytes[S, R, X any](
	init func() X,
	fold func(*X, []byte),
	sub Parser[S, R],
) ParamParser[ObserveState[S], Observed[X, R], X] {
	return observeParser[S, R, X]{init: init, fold: fold, sub: sub}
}

// Init implements Parser.
func (p observeParser[S, R, X]) Init() ObserveState[S] {
	return ObserveState[S]{
		sub:    p.sub.Init(),
		seeded: false,
	}
}

// InitInPlace implements Parser.
func (p observeParser[S, R, X]) InitInPlace(state *ObserveState[S]) {
	p.sub.InitInPlace(&state.sub)
	state.seeded = false
}

// InitParam implements ParamParser.
func (p observeParser[S, R, X]) InitParam(acc X, state *ObserveState[S], dst *option.Generic[Observed[X, R]]) {
	p.InitInPlace(state)

	*dst = option.Some(Observed[X, R]{Acc: acc, Result: option.None[R]()})
	state.seeded = true
}

// Parse implements Parser.
func (p observeParser[S, R, X]) Parse(
	state *ObserveState[S],
	chunk []byte,
	dst *option.Generic[Observed[X, R]],
) ([]byte, error) {
	obs, ok := dst.Get()
	if !state.seeded || !ok {
		obs = Observed[X, R]{Acc: p.init(), Result: option.None[R]()}
		state.seeded = true
	}

	rest, err := p.sub.Parse(&state.sub, chunk, &obs.Result)
	if err == nil || IsNeedMore(err) {
		if seen := consumed(chunk, rest); len(seen) > 0 {
			p.fold(&obs.Acc, seen)
		}
	}

	*dst = option.Some(obs)

	return rest, err
}
