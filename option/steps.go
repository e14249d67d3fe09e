package option

import "github.com/zoobzio/nullz"

// AndThen is nullz.AndThen for Option inputs.
//
//	half := option.AndThen(func(n int) option.Option[int] {
//	    if n%2 != 0 {
//	        return option.None[int]()
//	    }
//	    return option.Some(n / 2)
//	})
func AndThen[V, W any](fn func(V) Option[W]) nullz.Pipeline[Option[V], Option[W]] {
	return nullz.AndThen[Option[V], Option[W], V](fn)
}

// OrElse is nullz.OrElse for Option inputs.
func OrElse[T any](fn func() Option[T]) nullz.Pipeline[Option[T], Option[T]] {
	return nullz.OrElse(fn)
}

// Transform is nullz.Transform for Option inputs. The result is rebound to
// Option[W].
func Transform[V, W any](fn func(V) W) nullz.Pipeline[Option[V], Option[W]] {
	return nullz.Transform[Option[V], Option[W], V, W](fn)
}

// Or returns an OrElse step that falls back to Some(v).
func Or[T any](v T) nullz.Pipeline[Option[T], Option[T]] {
	return OrElse(func() Option[T] { return Some(v) })
}
