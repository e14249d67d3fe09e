package nullz

// Transform creates a single-step Pipeline that maps the contained value with
// fn and rebinds the plain result into the sibling nullable M.
//
// Transform is the simplest step - use it when the mapping cannot produce
// absence. If fn may fail to produce a value, use AndThen and return an empty
// nullable instead.
//
// When the input is empty, fn is not invoked and the step produces M's empty
// instance. When it holds a value, the wrapped result is known to hold one
// and the following step does not test it again.
//
// Both nullable types have to be named since fn only mentions contained
// values; V and W are inferred:
//
//	length := nullz.Transform[option.Option[string], option.Option[int]](func(s string) int {
//	    return len(s)
//	})
//
// Adapter packages such as option provide wrappers that infer every type.
func Transform[N Nullable[N, V], M Rebindable[M, W], V, W any](fn func(V) W) Pipeline[N, M] {
	return Pipeline[N, M]{
		steps:   []Step{{Policy: TransformPolicy}},
		probe:   func(n N) bool { return n.HasValue() },
		settled: func(m M) bool { return m.HasValue() },
		present: func(n N) (M, handoff) {
			return wrap[M](fn(n.Value())), handoffPresent
		},
		absent: func(N) (M, handoff) {
			return null[M](), handoffAbsent
		},
	}
}
