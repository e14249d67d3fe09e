// Package sqlnull adapts database/sql's Null[T] to the nullz contract so
// nullable columns can flow through pipelines.
//
//	var email sqlnull.Null[string]
//	if err := row.Scan(&email); err != nil {
//	    return err
//	}
//	domain := sqlnull.Transform(func(addr string) string {
//	    return addr[strings.LastIndexByte(addr, '@')+1:]
//	}).Apply(email)
package sqlnull

import (
	"database/sql"

	"github.com/zoobzio/nullz"
)

// Null is sql.Null[T] with the nullz contract attached. It scans like
// sql.Null; use SQL to pass it back to the database as a query argument.
type Null[T any] sql.Null[T]

// From converts a sql.Null.
func From[T any](n sql.Null[T]) Null[T] {
	return Null[T](n)
}

// Valid returns a Null holding v.
func Valid[T any](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

// Invalid returns an empty Null, the SQL NULL.
func Invalid[T any]() Null[T] {
	return Null[T]{}
}

// HasValue reports whether n is not NULL.
func (n Null[T]) HasValue() bool {
	return n.Valid
}

// Value returns the held value. It panics when n is NULL.
func (n Null[T]) Value() T {
	if !n.Valid {
		panic("sqlnull: Value called on NULL")
	}
	return n.V
}

// Null returns an empty Null. The receiver is ignored.
func (Null[T]) Null() Null[T] {
	return Invalid[T]()
}

// Wrap returns a Null holding v. The receiver is ignored.
func (Null[T]) Wrap(v T) Null[T] {
	return Valid(v)
}

// SQL converts n back to sql.Null, which implements driver.Valuer.
func (n Null[T]) SQL() sql.Null[T] {
	return sql.Null[T](n)
}

// Scan implements sql.Scanner.
func (n *Null[T]) Scan(src any) error {
	inner := sql.Null[T](*n)
	if err := inner.Scan(src); err != nil {
		return err
	}
	*n = Null[T](inner)
	return nil
}

// AndThen is nullz.AndThen for Null inputs.
func AndThen[V, W any](fn func(V) Null[W]) nullz.Pipeline[Null[V], Null[W]] {
	return nullz.AndThen[Null[V], Null[W], V](fn)
}

// OrElse is nullz.OrElse for Null inputs.
func OrElse[T any](fn func() Null[T]) nullz.Pipeline[Null[T], Null[T]] {
	return nullz.OrElse(fn)
}

// Transform is nullz.Transform for Null inputs. The result is rebound to
// Null[W].
func Transform[V, W any](fn func(V) W) nullz.Pipeline[Null[V], Null[W]] {
	return nullz.Transform[Null[V], Null[W], V, W](fn)
}
