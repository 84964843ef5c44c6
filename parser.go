package interp

import (
	"errors"

	"github.com/tarantool/go-option"
)

// OOB is an out-of-band signal a parser raises instead of producing a value.
type OOB uint8

const (
	// Reject marks an unrecoverable failure of the current schema instance.
	// The state that produced it must be re-initialized before reuse.
	Reject OOB = iota + 1
)

// Error implements the error interface.
func (o OOB) Error() string {
	switch o {
	case Reject:
		return "interp: rejected"
	default:
		return "interp: unknown out-of-band signal"
	}
}

// ErrNeedMore is returned when the whole chunk was consumed and the parser
// waits for more input. It is a suspension signal, not a failure.
var ErrNeedMore = errors.New("interp: need more input")

// IsNeedMore reports whether err asks for more input.
func IsNeedMore(err error) bool {
	return errors.Is(err, ErrNeedMore)
}

// IsReject reports whether err is a reject.
func IsReject(err error) bool {
	return errors.Is(err, Reject)
}

// Unit is the result of parsers that discard what they consume.
type Unit = struct{}

// Parser parses one instance of a binary schema under one interpretation.
//
// S is the state type, R the result type. The state is owned by the caller:
// create it with Init or InitInPlace, then call Parse with successive chunks
// until it returns a nil error (done) or Reject.
//
// Parse returns:
//   - (rest, nil): dst holds the value, rest is the unconsumed suffix of chunk;
//   - (empty, ErrNeedMore): chunk was consumed entirely, dst unchanged;
//   - (rest, Reject): the instance failed, state must not be fed again.
//
// Some combinators keep partial results in dst while parsing, so dst must stay
// at a stable location between calls.
type Parser[S, R any] interface {
	// Init returns a fresh state.
	Init() S
	// InitInPlace constructs a fresh state at the given address.
	InitInPlace(state *S)
	// Parse feeds the next chunk.
	Parse(state *S, chunk []byte, dst *option.Generic[R]) ([]byte, error)
}

// ParamParser is a Parser that can be initialized with a parameter produced
// by an upstream parser.
type ParamParser[S, R, P any] interface {
	Parser[S, R]
	// InitParam initializes state (and possibly dst) with param.
	InitParam(param P, state *S, dst *option.Generic[R])
}

func needMore(chunk []byte) ([]byte, error) {
	return chunk[len(chunk):], ErrNeedMore
}

func reject(rest []byte) ([]byte, error) {
	return rest, Reject
}

// consumed returns the prefix of chunk that a parser consumed, given the rest it returned.
func consumed(chunk, rest []byte) []byte {
	return chunk[:len(chunk)-len(rest)]
}

// take moves the value out of slot.
func take[T any](slot *option.Generic[T]) (T, bool) {
	value, ok := slot.Get()
	*slot = option.None[T]()

	return value, ok
}
