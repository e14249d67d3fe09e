package nullz

import "testing"

// maybe is a minimal nullable used by the package's own tests.
type maybe[T any] struct {
	v  T
	ok bool
}

func some[T any](v T) maybe[T] {
	return maybe[T]{v: v, ok: true}
}

func none[T any]() maybe[T] {
	return maybe[T]{}
}

func (m maybe[T]) HasValue() bool {
	return m.ok
}

func (m maybe[T]) Value() T {
	if !m.ok {
		panic("maybe: Value called on empty")
	}
	return m.v
}

func (maybe[T]) Null() maybe[T] {
	return none[T]()
}

func (maybe[T]) Wrap(v T) maybe[T] {
	return some(v)
}

// mustPanic runs fn and returns the recovered value, failing the test if fn
// returned normally.
func mustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}
