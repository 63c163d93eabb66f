package config

import "fmt"

// Optional wraps a value that is either unset or holds a concrete T. Unset is
// distinct from every concrete value, including false and the empty string, so
// consumers can tell "use the library default" apart from "explicitly
// disabled". The zero value is unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether the Optional holds a concrete value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Value returns the held value and whether one is set.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the held value, or fallback when unset.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer, rendering unset Optionals as "unset".
func (o Optional[T]) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprintf("%v", o.value)
}
