// Package options implements functional options shared by the combinators
// that accept configuration.
package options

// OptionConstructor returns the default configuration.
type OptionConstructor[T any] func() T

// OptionCallback modifies a configuration in place.
type OptionCallback[T any] func(*T)

// ApplyOptions builds a configuration from its defaults and the callbacks, in order.
// A nil constructor starts from the zero value; nil callbacks are skipped.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb == nil {
			continue
		}

		cb(&opts)
	}

	return opts
}

