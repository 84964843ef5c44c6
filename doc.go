// Package interp provides incremental parsers for binary formats that are fed
// input in arbitrary chunks.
//
// A parser describes the shape of the input (a byte, an array, a
// length-prefixed field) together with what to do with it (capture, discard,
// transform). Progress is kept in a state value owned by the caller, so
// parsing can be suspended after any chunk and resumed later with the next one:
//
//	p := interp.Array(interp.Byte(), 3)
//	state := p.Init()
//	dst := option.None[[]byte]()
//
//	rest, err := p.Parse(&state, chunk, &dst)
//
// See [Parser] for the contract every parser implements.
//
// The [github.com/tarantool/go-interp/mpwire] package builds MessagePack
// parsers on top of these combinators.
package interp
