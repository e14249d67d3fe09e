package testing

import (
	"sync/atomic"
	"testing"
)

// Probe counts how often nullables bound to it are inspected.
type Probe struct {
	hasValue atomic.Int64
	value    atomic.Int64
}

// Detached records probes on Nullable instances built by Null or Wrap, which
// the pipeline creates on its own. Tests reading it must not run in parallel
// with other tests using Nullable.
var Detached = &Probe{}

// NewProbe creates a Probe with zero counts.
func NewProbe() *Probe {
	return &Probe{}
}

// HasValueCalls returns how often HasValue was called.
func (p *Probe) HasValueCalls() int {
	return int(p.hasValue.Load())
}

// ValueCalls returns how often Value was called.
func (p *Probe) ValueCalls() int {
	return int(p.value.Load())
}

// Reset zeroes both counts.
func (p *Probe) Reset() {
	p.hasValue.Store(0)
	p.value.Store(0)
}

// Nullable is a container satisfying the nullz contract that reports every
// HasValue and Value call to its Probe.
type Nullable[T any] struct {
	value T
	ok    bool
	probe *Probe
}

// Present returns a Nullable holding v, reporting to p.
func Present[T any](p *Probe, v T) Nullable[T] {
	return Nullable[T]{value: v, ok: true, probe: p}
}

// Absent returns an empty Nullable, reporting to p.
func Absent[T any](p *Probe) Nullable[T] {
	return Nullable[T]{probe: p}
}

// HasValue reports whether n holds a value.
func (n Nullable[T]) HasValue() bool {
	n.bound().hasValue.Add(1)
	return n.ok
}

// Value returns the held value. It panics when n is empty.
func (n Nullable[T]) Value() T {
	n.bound().value.Add(1)
	if !n.ok {
		panic("testing: Value called on an empty Nullable")
	}
	return n.value
}

// Null returns an empty Nullable bound to Detached.
func (Nullable[T]) Null() Nullable[T] {
	return Absent[T](Detached)
}

// Wrap returns a Nullable holding v bound to Detached.
func (Nullable[T]) Wrap(v T) Nullable[T] {
	return Present(Detached, v)
}

// Peek returns the held value and presence without recording a probe.
func (n Nullable[T]) Peek() (T, bool) {
	return n.value, n.ok
}

func (n Nullable[T]) bound() *Probe {
	if n.probe == nil {
		return Detached
	}
	return n.probe
}

// AssertProbed verifies the HasValue and Value call counts of p.
func AssertProbed(t *testing.T, p *Probe, hasValueCalls, valueCalls int) {
	t.Helper()
	if got := p.HasValueCalls(); got != hasValueCalls {
		t.Errorf("expected %d HasValue calls, got %d", hasValueCalls, got)
	}
	if got := p.ValueCalls(); got != valueCalls {
		t.Errorf("expected %d Value calls, got %d", valueCalls, got)
	}
}
