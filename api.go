package nullz

// Presence is the part of the nullable contract that does not depend on the
// contained type. Every type flowing through a Pipeline implements it.
//
// HasValue reports whether the receiver differs from the type's null marker.
//
// Null returns an empty instance built from the null marker. It is a
// type-level operation: the receiver is ignored and the method must be
// callable on the zero value of N. Pipelines use it to synthesize the empty
// result of a skipped step without running the step's action.
type Presence[N any] interface {
	HasValue() bool
	Null() N
}

// Nullable is a container N that holds either a value of type V or nothing.
//
// Value returns the contained value. Pipelines only call it after HasValue
// reported true; calling it on an empty instance is the implementation's
// business (the bundled adapters panic).
//
// Example implementation:
//
//	type Maybe[T any] struct {
//	    v  T
//	    ok bool
//	}
//
//	func (m Maybe[T]) HasValue() bool { return m.ok }
//	func (m Maybe[T]) Value() T       { return m.v }
//	func (Maybe[T]) Null() Maybe[T]   { return Maybe[T]{} }
type Nullable[N, V any] interface {
	Presence[N]
	Value() V
}

// Rebindable is a container N that can be built from a plain value of type V.
// Together with the caller naming N for a desired V, it forms the rebind
// relationship Transform relies on: given Maybe[int] and an action producing
// string, the sibling type Maybe[string] must be Rebindable[Maybe[string], string].
//
// Wrap must return an instance whose HasValue reports true. Like Null, it is a
// type-level operation and must be callable on the zero value of N.
type Rebindable[N, V any] interface {
	Presence[N]
	Wrap(V) N
}

// Name is a type alias for pipeline names used in observability output.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const LookupUserName nullz.Name = "lookup-user"
//	observed := nullz.Observe(LookupUserName, pipeline)
type Name = string

// null builds the empty instance of N from its null marker.
func null[N Presence[N]]() N {
	var zero N
	return zero.Null()
}

// wrap builds a holding instance of N through its rebind constructor.
func wrap[N Rebindable[N, V], V any](v V) N {
	var zero N
	return zero.Wrap(v)
}
