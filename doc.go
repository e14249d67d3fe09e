// Package nullz provides short-circuiting pipelines over nullable container types.
//
// # Overview
//
// A nullable holds either a value or nothing: an option type, a nullable
// database column, a cache lookup result. Code that chains work over such
// values tends to become a ladder of presence checks. nullz replaces the
// ladder with a pipeline of small steps that are composed once and applied
// many times, at the cost of the conditionals you would have written by hand.
//
// # Core Concepts
//
// Any container type joins by implementing a small contract:
//
//	type Presence[N any] interface {
//	    HasValue() bool
//	    Null() N
//	}
//
//	type Nullable[N, V any] interface {
//	    Presence[N]
//	    Value() V
//	}
//
//	type Rebindable[N, V any] interface {
//	    Presence[N]
//	    Wrap(V) N
//	}
//
// Three step constructors wrap a function with a dispatch policy:
//
//   - AndThen: run the function on the contained value; it returns a nullable
//   - OrElse: run the function only when there is no value; it supplies a fallback
//   - Transform: map the contained value to a plain value, keeping absence
//
// Every constructor returns a single-step Pipeline. Pipelines are immutable
// values composed with Append (or Then for type-preserving suffixes) and run
// with Apply:
//
//	parse := option.AndThen(func(s string) option.Option[int] {
//	    n, err := strconv.Atoi(s)
//	    if err != nil {
//	        return option.None[int]()
//	    }
//	    return option.Some(n)
//	})
//	double := option.Transform(func(n int) int { return n * 2 })
//	fallback := option.OrElse(func() option.Option[int] { return option.Some(0) })
//
//	pipeline := nullz.Append(parse, double).Then(fallback)
//
//	pipeline.Apply(option.Some("21"))  // Some(42)
//	pipeline.Apply(option.Some("abc")) // Some(0)
//	pipeline.Apply(option.None[string]()) // Some(0), parse and double never run
//
// # Short-Circuiting
//
// Each step has a value path and an empty path. Once a step produces an empty
// nullable, the following AndThen and Transform steps are entered on their
// empty path and do not run their functions; only an OrElse step can bring a
// value back. Steps pass on what they know about presence, so a nullable is
// tested at most once per step. The empty result of skipped steps is built
// from the declared result types, never by running user code.
//
// Steps change the contained type freely: the output nullable of one
// pipeline must be the input nullable of the next, which the compiler checks
// through Append's type parameters. There is no reflection and no runtime
// type assertion.
//
// # Adapters
//
// The option package provides a ready Option[T] and step constructors that
// infer every type parameter. The sqlnull package adapts database/sql's
// Null[T]. Other container types implement the contract directly and use the
// generic constructors, naming the input nullable:
//
//	nullz.AndThen[MyMaybe[int]](func(n int) MyMaybe[string] { ... })
//
// # Observability
//
// Observe wraps a pipeline with metrics (metricz), tracing (tracez) and
// lifecycle hooks (hookz); Graph and WriteDOT render a pipeline's dispatch
// state machine; ApplyAll applies a pipeline to many inputs concurrently.
//
// # Error Handling
//
// Misuse is a compile error: an OrElse fallback of the wrong type, an AndThen
// function that does not return a nullable, or appending pipelines whose
// nullable types do not line up. Functions wrapped in steps are called
// directly; a panic raised by one propagates to the caller of Apply
// untouched. The only runtime failure of the package itself is applying the
// zero Pipeline, which has no steps and panics with ErrEmptyPipeline.
package nullz
