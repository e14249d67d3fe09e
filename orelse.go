package nullz

// OrElse creates a single-step Pipeline that supplies a fallback for empty
// input. fn takes nothing and must return exactly the input nullable type N;
// a nullable of another type, even one holding the same value type, does not
// compile.
//
// When the input holds a value, fn is not invoked and the input is handed on
// unchanged; the following step knows it holds a value and does not test it
// again. When the input is empty, fn's result is handed on and its own
// presence decides the following step's path.
//
// Example:
//
//	withDefault := nullz.OrElse(func() option.Option[int] { return option.Some(0) })
//	withDefault.Apply(option.None[int]()) // Some(0)
//	withDefault.Apply(option.Some(7))     // Some(7)
//
// Fallbacks can be layered with Then:
//
//	lookup := fromCache.Then(nullz.OrElse(fromDisk)).Then(nullz.OrElse(fromDefaults))
func OrElse[N Presence[N]](fn func() N) Pipeline[N, N] {
	return Pipeline[N, N]{
		steps:   []Step{{Policy: OrElsePolicy}},
		probe:   func(n N) bool { return n.HasValue() },
		settled: func(n N) bool { return n.HasValue() },
		present: func(n N) (N, handoff) {
			return n, handoffPresent
		},
		absent: func(N) (N, handoff) {
			return fn(), handoffUnknown
		},
	}
}
