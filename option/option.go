// Package option provides Option, a value-or-nothing container that satisfies
// the nullz contract, along with step constructors that infer every type
// parameter from the wrapped function.
package option

import "fmt"

// Option holds either a value of type T or nothing. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns None for a nil pointer and Some of the pointee otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// HasValue reports whether o holds a value.
func (o Option[T]) HasValue() bool {
	return o.ok
}

// Value returns the held value. It panics when o is None.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("option: Value called on None")
	}
	return o.value
}

// Null returns None. The receiver is ignored.
func (Option[T]) Null() Option[T] {
	return None[T]()
}

// Wrap returns Some(v). The receiver is ignored.
func (Option[T]) Wrap(v T) Option[T] {
	return Some(v)
}

// Get returns the held value and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// ValueOr returns the held value, or fallback when o is None.
func (o Option[T]) ValueOr(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Pointer returns a pointer to a copy of the held value, or nil when o is None.
func (o Option[T]) Pointer() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// String renders Some(value) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
