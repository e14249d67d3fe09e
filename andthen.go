package nullz

// AndThen creates a single-step Pipeline that invokes fn with the contained
// value of its input and hands fn's nullable result on.
//
// When the input is empty, fn is not invoked. The step instead produces the
// empty instance of fn's result type M (M's Null), and every following step
// is entered on its empty path. The result type of the skipped call is known
// from fn's signature, so nothing runs to discover it.
//
// N is the input nullable and has to be named at the call site because fn
// only mentions the contained value. M and V are inferred from fn:
//
//	parse := nullz.AndThen[option.Option[string]](func(s string) option.Option[int] {
//	    n, err := strconv.Atoi(s)
//	    if err != nil {
//	        return option.None[int]()
//	    }
//	    return option.Some(n)
//	})
//
// Adapter packages such as option provide wrappers that infer N as well.
func AndThen[N Nullable[N, V], M Presence[M], V any](fn func(V) M) Pipeline[N, M] {
	return Pipeline[N, M]{
		steps:   []Step{{Policy: AndThenPolicy}},
		probe:   func(n N) bool { return n.HasValue() },
		settled: func(m M) bool { return m.HasValue() },
		present: func(n N) (M, handoff) {
			return fn(n.Value()), handoffUnknown
		},
		absent: func(N) (M, handoff) {
			return null[M](), handoffAbsent
		},
	}
}
