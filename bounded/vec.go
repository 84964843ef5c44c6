// Package bounded provides fixed-capacity containers used by parsers
// wherever a schema allows more than one element.
//
// A Vec never grows past the capacity it was created with: pushing into a
// full Vec fails instead of reallocating.
package bounded

// Vec is a sequence with a fixed capacity.
//
// The zero value is a Vec with capacity 0.
type Vec[T any] struct {
	items []T
}

// New creates a new empty Vec with the given capacity.
func New[T any](capacity int) Vec[T] {
	return Vec[T]{
		items: make([]T, 0, capacity),
	}
}

// Reset empties the Vec and sets its capacity.
// The backing array is reused when it already has exactly the requested capacity.
func (v *Vec[T]) Reset(capacity int) {
	if v.items == nil || cap(v.items) != capacity {
		v.items = make([]T, 0, capacity)

		return
	}

	clear(v.items)
	v.items = v.items[:0]
}

// Len returns the number of stored elements.
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// Cap returns the capacity of the Vec.
func (v *Vec[T]) Cap() int {
	return cap(v.items)
}

// Full reports whether no more elements fit.
func (v *Vec[T]) Full() bool {
	return len(v.items) == cap(v.items)
}

// Push appends value. It returns false and leaves the Vec unchanged when full.
func (v *Vec[T]) Push(value T) bool {
	if v.Full() {
		return false
	}

	v.items = append(v.items, value)

	return true
}

// Extend appends all values or none of them.
func (v *Vec[T]) Extend(values ...T) bool {
	if len(values) > cap(v.items)-len(v.items) {
		return false
	}

	v.items = append(v.items, values...)

	return true
}

// Items returns a view of the stored elements.
// The view must not be modified and is invalidated by Reset.
func (v *Vec[T]) Items() []T {
	return v.items
}

// Take moves the stored elements out of the Vec and leaves it with capacity 0.
func (v *Vec[T]) Take() []T {
	out := v.items
	v.items = nil

	return out
}

// Fold appends observed bytes to a byte Vec, dropping whatever does not fit.
// It matches the fold signature of interp.ObserveBytes.
func Fold(acc *Vec[byte], data []byte) {
	room := acc.Cap() - acc.Len()
	if len(data) > room {
		data = data[:room]
	}

	acc.Extend(data...)
}
