package goiterables

// Optional represents a value of type T that may be absent.
// The zero value is None.
type Optional[T any] struct {
	value T
	some  bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value: value,
		some:  true,
	}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome returns true if o holds a value.
func (o Optional[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if o is absent.
func (o Optional[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value, and whether o holds one.
// If o is absent, the value is the zero value of T.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the held value.
// It panics if o is absent.
func (o Optional[T]) MustGet() T {
	if !o.some {
		panic("goiterables: MustGet on None")
	}

	return o.value
}

// OrElse returns the held value, or fallback if o is absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.some {
		return fallback
	}

	return o.value
}

// MapOptional returns an Optional holding mapp applied to o's value,
// or None if o is absent.
func MapOptional[T any, U any](o Optional[T], mapp Function[T, U]) Optional[U] {
	if !o.some {
		return None[U]()
	}

	return Some(mapp(o.value))
}
