package interp

import (
	"github.com/tarantool/go-option"
)

// LimitState is the state of a LengthLimited parser.
type LimitState[S any] struct {
	sub  S
	seen int
}

type limitParser[S, R any] struct {
	limit int
	sub   Parser[S, R]
}

// LengthLimited returns a parser running sub over exactly limit bytes.
// The sub-parser never sees input beyond the limit. It must consume every byte
// it is offered, and complete exactly at the limit.
func LengthLimited[S, R any](limit int, sub Parser[S, R]) Parser[LimitState[S], R] {
	return limitParser[S, R]{limit: limit, sub: sub}
}

// Init implements Parser.
func (p limitParser[S, R]) Init() LimitState[S] {
	return LimitState[S]{
		sub:  p.sub.Init(),
		seen: 0,
	}
}

// InitInPlace implements Parser.
func (p limitParser[S, R]) InitInPlace(state *LimitState[S]) {
	p.sub.InitInPlace(&state.sub)
	state.seen = 0
}

// Parse implements Parser.
func (p limitParser[S, R]) Parse(state *LimitState[S], chunk []byte, dst *option.Generic[R]) ([]byte, error) {
	feed := max(0, min(len(chunk), p.limit-state.seen))

	rest, err := p.sub.Parse(&state.sub, chunk[:feed], dst)
	used := feed - len(rest)
	state.seen += used

	switch {
	case err == nil:
		if used < feed || state.seen < p.limit {
			return reject(chunk[used:])
		}

		return chunk[feed:], nil
	case IsNeedMore(err):
		// Under-consumption on need-more is treated as a failure as well.
		if used < feed || state.seen >= p.limit {
			return reject(chunk[used:])
		}

		return needMore(chunk)
	default:
		return chunk[used:], err
	}
}
