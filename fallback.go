package interp

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp/internal/options"
)

// Lengthed is the result of LengthFallback. Result is absent when the field
// failed to parse and was skipped. Acc has observed every byte of the field
// body either way.
type Lengthed[X, R any] struct {
	Result option.Generic[R]
	Acc    X
}

type fallbackPhase uint8

const (
	fallbackLength fallbackPhase = iota
	fallbackElement
	fallbackFailed
	fallbackDone
)

// FallbackState is the state of a LengthFallback parser.
type FallbackState[SN, RN, S any] struct {
	phase     fallbackPhase
	length    SN
	lengthDst option.Generic[RN]
	sub       S
	consumed  int
	declared  int
	seeded    bool
}

type fallbackParser[SN any, RN Integer, S, R, X any] struct {
	length Parser[SN, RN]
	init   func() X
	fold   func(*X, []byte)
	sub    Parser[S, R]
	strict bool
	logger zerolog.Logger
}

// LengthFallback returns a parser for a length-prefixed field whose body is
// parsed by sub. When sub fails on the body, the remaining declared bytes are
// skipped and the result is absent, so the enclosing message can continue.
// Every body byte is folded into an accumulator created by init, or seeded
// through InitParam.
//
// With WithStrict a failing body rejects instead.
func LengthFallback[SN any, RN Integer, S, R, X any](
	length Parser[SN, RN],
	init func() X,
	fold func(*X, []byte),
	sub Parser[S, R],
	opts ...options.OptionCallback[fallbackOptions],
) ParamParser[FallbackState[SN, RN, S], Lengthed[X, R], X] {
	cfg := options.ApplyOptions(defaultFallbackOptions, opts)

	return fallbackParser[SN, RN, S, R, X]{
		length: length,
		init:   init,
		fold:   fold,
		sub:    sub,
		strict: cfg.strict,
		logger: cfg.logger,
	}
}

// SkipInvalid is LengthFallback without an accumulator.
func SkipInvalid[SN any, RN Integer, S, R any](
	length Parser[SN, RN],
	sub Parser[S, R],
	opts ...options.OptionCallback[fallbackOptions],
) ParamParser[FallbackState[SN, RN, S], Lengthed[Unit, R], Unit] {
	return LengthFallback(
		length,
		func() Unit { return Unit{} },
		func(*Unit, []byte) {},
		sub,
		opts...,
	)
}

// Init implements Parser.
func (p fallbackParser[SN, RN, S, R, X]) Init() FallbackState[SN, RN, S] {
	return FallbackState[SN, RN, S]{
		phase:     fallbackLength,
		length:    p.length.Init(),
		lengthDst: option.None[RN](),
		sub:       p.sub.Init(),
		consumed:  0,
		declared:  0,
		seeded:    false,
	}
}

// InitInPlace implements Parser.
func (p fallbackParser[SN, RN, S, R, X]) InitInPlace(state *FallbackState[SN, RN, S]) {
	state.phase = fallbackLength
	p.length.InitInPlace(&state.length)
	state.lengthDst = option.None[RN]()
	p.sub.InitInPlace(&state.sub)
	state.consumed = 0
	state.declared = 0
	state.seeded = false
}

// InitParam implements ParamParser.
func (p fallbackParser[SN, RN, S, R, X]) InitParam(
	acc X,
	state *FallbackState[SN, RN, S],
	dst *option.Generic[Lengthed[X, R]],
) {
	p.InitInPlace(state)

	*dst = option.Some(Lengthed[X, R]{Result: option.None[R](), Acc: acc})
	state.seeded = true
}

// Parse implements Parser.
func (p fallbackParser[SN, RN, S, R, X]) Parse(
	state *FallbackState[SN, RN, S],
	chunk []byte,
	dst *option.Generic[Lengthed[X, R]],
) ([]byte, error) {
	if state.phase == fallbackDone {
		return reject(chunk)
	}

	out, ok := dst.Get()
	if !state.seeded || !ok {
		out = Lengthed[X, R]{Result: option.None[R](), Acc: p.init()}
		state.seeded = true
	}

	rest, err := p.parse(state, chunk, &out)
	*dst = option.Some(out)

	return rest, err
}

func (p fallbackParser[SN, RN, S, R, X]) parse(
	state *FallbackState[SN, RN, S],
	chunk []byte,
	out *Lengthed[X, R],
) ([]byte, error) {
	cursor := chunk

	if state.phase == fallbackLength {
		next, err := p.length.Parse(&state.length, cursor, &state.lengthDst)
		if err != nil {
			return next, err
		}

		cursor = next

		n, ok := take(&state.lengthDst)
		if !ok {
			return reject(cursor)
		}

		declared, ok := toIndex(n, math.MaxInt)
		if !ok {
			state.phase = fallbackDone

			return reject(cursor)
		}

		state.declared = declared
		state.consumed = 0
		state.phase = fallbackElement
	}

	if state.phase == fallbackElement {
		feed := min(len(cursor), state.declared-state.consumed)

		rest, err := p.sub.Parse(&state.sub, cursor[:feed], &out.Result)

		switch {
		case err == nil || IsNeedMore(err):
			used := feed - len(rest)
			p.observe(state, out, cursor[:used])
			cursor = cursor[used:]

			if err == nil && state.consumed == state.declared {
				state.phase = fallbackDone

				return cursor, nil
			}

			// A sub-parser asking for more while leaving offered bytes behind
			// fails the field; the bytes it left are skipped.
			if err != nil && used == feed && state.consumed < state.declared {
				return needMore(chunk)
			}
		default:
			// The sub-parser's rest is not trusted after a reject: skipping
			// restarts from where this call began.
		}

		if !p.fail(state, out) {
			state.phase = fallbackDone

			return reject(cursor)
		}
	}

	return p.skip(state, chunk, cursor, out)
}

// fail moves to the Failed phase. It reports false when the field must be
// rejected instead of skipped.
func (p fallbackParser[SN, RN, S, R, X]) fail(state *FallbackState[SN, RN, S], out *Lengthed[X, R]) bool {
	out.Result = option.None[R]()
	state.phase = fallbackFailed

	msg := "skipping field that failed to parse"
	if p.strict {
		msg = "rejecting field that failed to parse"
	}

	p.logger.Debug().
		Int("consumed", state.consumed).
		Int("declared", state.declared).
		Msg(msg)

	return !p.strict
}

func (p fallbackParser[SN, RN, S, R, X]) skip(
	state *FallbackState[SN, RN, S],
	chunk, cursor []byte,
	out *Lengthed[X, R],
) ([]byte, error) {
	n := min(state.declared-state.consumed, len(cursor))
	p.observe(state, out, cursor[:n])
	cursor = cursor[n:]

	if state.consumed < state.declared {
		return needMore(chunk)
	}

	state.phase = fallbackDone
	out.Result = option.None[R]()

	return cursor, nil
}

func (p fallbackParser[SN, RN, S, R, X]) observe(state *FallbackState[SN, RN, S], out *Lengthed[X, R], data []byte) {
	if len(data) == 0 {
		return
	}

	p.fold(&out.Acc, data)
	state.consumed += len(data)
}
