package testing

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-interp"
)

// Outcome is the result of feeding a parser a sequence of chunks.
type Outcome[R any] struct {
	// Value is the destination after the last call.
	Value option.Generic[R]
	// Err is nil when the parser completed, interp.ErrNeedMore when the
	// chunks ran out and interp.Reject on failure.
	Err error
	// Leftover is the unconsumed input: the rest of the last chunk fed
	// followed by every chunk that was not fed.
	Leftover []byte
	// Calls is the number of Parse calls made.
	Calls int
}

// Feed initializes a state for p and parses chunks until the parser stops
// asking for more input. Every need-more answer must come with an empty rest.
func Feed[S, R any](t T, p interp.Parser[S, R], chunks [][]byte) Outcome[R] {
	t.Helper()

	state := p.Init()
	dst := option.None[R]()

	return feed(t, p, &state, &dst, chunks)
}

// FeedParam is Feed for a parameterized parser initialized with param.
func FeedParam[S, R, P any](t T, p interp.ParamParser[S, R, P], param P, chunks [][]byte) Outcome[R] {
	t.Helper()

	var state S

	dst := option.None[R]()
	p.InitParam(param, &state, &dst)

	return feed[S, R](t, p, &state, &dst, chunks)
}

// FeedState is Feed over a caller-provided state and destination, for
// checking reuse of a state after InitInPlace.
func FeedState[S, R any](t T, p interp.Parser[S, R], state *S, dst *option.Generic[R], chunks [][]byte) Outcome[R] {
	t.Helper()

	return feed(t, p, state, dst, chunks)
}

func feed[S, R any](t T, p interp.Parser[S, R], state *S, dst *option.Generic[R], chunks [][]byte) Outcome[R] {
	t.Helper()

	for i, chunk := range chunks {
		rest, err := p.Parse(state, chunk, dst)

		if interp.IsNeedMore(err) {
			if len(rest) != 0 {
				t.Errorf("chunk %d: need more with %d bytes left", i, len(rest))
			}

			continue
		}

		if len(rest) > len(chunk) || (len(rest) > 0 && &rest[len(rest)-1] != &chunk[len(chunk)-1]) {
			t.Errorf("chunk %d: rest is not a suffix of the chunk", i)
		}

		return Outcome[R]{
			Value:    *dst,
			Err:      err,
			Leftover: concat(append([][]byte{rest}, chunks[i+1:]...)),
			Calls:    i + 1,
		}
	}

	return Outcome[R]{
		Value:    *dst,
		Err:      interp.ErrNeedMore,
		Leftover: []byte{},
		Calls:    len(chunks),
	}
}

func concat(chunks [][]byte) []byte {
	out := []byte{}
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}

	return out
}
