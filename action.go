package interp

import (
	"github.com/tarantool/go-option"
)

// ActionState is the state of Action and MoveAction parsers.
type ActionState[S, R any] struct {
	sub    S
	subDst option.Generic[R]
	done   bool
}

type actionParser[S, R, O any] struct {
	sub  Parser[S, R]
	move bool
	f    func(*R) (O, bool)
}

// Action returns a parser transforming the result of sub with f.
// f sees the sub-result in place; returning false rejects.
func Action[S, R, O any](sub Parser[S, R], f func(*R) (O, bool)) Parser[ActionState[S, R], O] {
	return actionParser[S, R, O]{sub: sub, f: f}
}

// MoveAction returns a parser transforming the result of sub with f.
// The sub-result is moved out of the state before f is called.
func MoveAction[S, R, O any](sub Parser[S, R], f func(R) (O, bool)) Parser[ActionState[S, R], O] {
	return actionParser[S, R, O]{
		sub:  sub,
		move: true,
		f:    func(r *R) (O, bool) { return f(*r) },
	}
}

// Init implements Parser.
func (p actionParser[S, R, O]) Init() ActionState[S, R] {
	return ActionState[S, R]{
		sub:    p.sub.Init(),
		subDst: option.None[R](),
		done:   false,
	}
}

// InitInPlace implements Parser.
func (p actionParser[S, R, O]) InitInPlace(state *ActionState[S, R]) {
	p.sub.InitInPlace(&state.sub)
	state.subDst = option.None[R]()
	state.done = false
}

// Parse implements Parser.
func (p actionParser[S, R, O]) Parse(state *ActionState[S, R], chunk []byte, dst *option.Generic[O]) ([]byte, error) {
	if state.done {
		return reject(chunk)
	}

	rest, err := p.sub.Parse(&state.sub, chunk, &state.subDst)
	if err != nil {
		return rest, err
	}

	state.done = true

	var (
		value R
		ok    bool
	)

	if p.move {
		value, ok = take(&state.subDst)
	} else {
		value, ok = state.subDst.Get()
	}

	if !ok {
		return reject(rest)
	}

	out, ok := p.f(&value)
	if !ok {
		return reject(rest)
	}

	*dst = option.Some(out)

	return rest, nil
}

type paramActionParser[S, R, O, P any] struct {
	actionParser[S, R, O]

	seeded ParamParser[S, R, P]
}

// ParamAction is Action over a parameterized sub-parser, forwarding InitParam to it.
func ParamAction[S, R, O, P any](sub ParamParser[S, R, P], f func(*R) (O, bool)) ParamParser[ActionState[S, R], O, P] {
	return paramActionParser[S, R, O, P]{
		actionParser: actionParser[S, R, O]{sub: sub, f: f},
		seeded:       sub,
	}
}

// ParamMoveAction is MoveAction over a parameterized sub-parser, forwarding InitParam to it.
func ParamMoveAction[S, R, O, P any](sub ParamParser[S, R, P], f func(R) (O, bool)) ParamParser[ActionState[S, R], O, P] {
	return paramActionParser[S, R, O, P]{
		actionParser: actionParser[S, R, O]{
			sub:  sub,
			move: true,
			f:    func(r *R) (O, bool) { return f(*r) },
		},
		seeded: sub,
	}
}

// InitParam implements ParamParser.
func (p paramActionParser[S, R, O, P]) InitParam(param P, state *ActionState[S, R], _ *option.Generic[O]) {
	p.InitInPlace(state)
	p.seeded.InitParam(param, &state.sub, &state.subDst)
}

// ContextActionState is the state of an ActionWith parser.
type ContextActionState[S, R, C any] struct {
	sub    S
	subDst option.Generic[R]
	ctx    option.Generic[C]
	done   bool
}

type contextActionParser[S, R, O, C any] struct {
	sub Parser[S, R]
	f   func(*R, C) (O, bool)
}

// ActionWith returns a parser transforming the result of sub with f and a
// context value supplied through InitParam. The context is moved into f on
// completion. Parsing without a context rejects.
func ActionWith[S, R, O, C any](
	sub Parser[S, R],
	f func(*R, C) (O, bool),
) ParamParser[ContextActionState[S, R, C], O, C] {
	return contextActionParser[S, R, O, C]{sub: sub, f: f}
}

// Init implements Parser.
func (p contextActionParser[S, R, O, C]) Init() ContextActionState[S, R, C] {
	return ContextActionState[S, R, C]{
		sub:    p.sub.Init(),
		subDst: option.None[R](),
		ctx:    option.None[C](),
		done:   false,
	}
}

// InitInPlace implements Parser.
func (p contextActionParser[S, R, O, C]) InitInPlace(state *ContextActionState[S, R, C]) {
	p.sub.InitInPlace(&state.sub)
	state.subDst = option.None[R]()
	state.ctx = option.None[C]()
	state.done = false
}

// InitParam implements ParamParser.
func (p contextActionParser[S, R, O, C]) InitParam(ctx C, state *ContextActionState[S, R, C], _ *option.Generic[O]) {
	p.InitInPlace(state)
	state.ctx = option.Some(ctx)
}

// Parse implements Parser.
func (p contextActionParser[S, R, O, C]) Parse(
	state *ContextActionState[S, R, C],
	chunk []byte,
	dst *option.Generic[O],
) ([]byte, error) {
	if state.done {
		return reject(chunk)
	}

	rest, err := p.sub.Parse(&state.sub, chunk, &state.subDst)
	if err != nil {
		return rest, err
	}

	state.done = true

	value, ok := state.subDst.Get()
	if !ok {
		return reject(rest)
	}

	ctx, ok := take(&state.ctx)
	if !ok {
		return reject(rest)
	}

	out, ok := p.f(&value, ctx)
	if !ok {
		return reject(rest)
	}

	*dst = option.Some(out)

	return rest, nil
}
