// Package testing provides test utilities and helpers for nullz-based applications.
//
// This package includes mock actions that record their calls, a nullable that
// counts how often its presence and value are probed, and assertion helpers
// for verifying which steps of a pipeline ran and in what order.
//
// Example usage:
//
//	func TestLookup(t *testing.T) {
//		order := nullztest.NewSequence()
//		find := nullztest.NewMockAction[int, option.Option[string]](t, "find").
//			WithReturn(option.Some("ada")).
//			InSequence(order)
//		fallback := nullztest.NewMockSupplier[option.Option[string]](t, "fallback").
//			InSequence(order)
//
//		pipeline := option.AndThen(find.Call).Then(option.OrElse(fallback.Call))
//		pipeline.Apply(option.Some(7))
//
//		nullztest.AssertCalledWith(t, find, 7)
//		nullztest.AssertNotCalled(t, fallback)
//		nullztest.AssertOrder(t, order, "find")
//	}
package testing

import (
	"slices"
	"sync"
	"sync/atomic"
	"testing"
)

// Recorder is implemented by the mocks in this package.
type Recorder interface {
	Name() string
	CallCount() int
}

// Sequence records the order in which mocks were called across a test.
type Sequence struct {
	mu    sync.Mutex
	names []string
}

// NewSequence creates an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) record(name string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
}

// Names returns the recorded mock names in call order.
func (s *Sequence) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.names)
}

// Reset clears the recorded order.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = nil
}

// MockAction is a configurable stand-in for a step function taking V and
// returning R. Pass its Call method to AndThen or Transform.
type MockAction[V, R any] struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	t         *testing.T
	name      string
	callCount int64
	mu        sync.RWMutex
	inputs    []V
	returnVal R
	returnFn  func(V) R
	panicMsg  string
	sequence  *Sequence
}

// NewMockAction creates a mock action returning the zero R until configured.
func NewMockAction[V, R any](t *testing.T, name string) *MockAction[V, R] {
	return &MockAction[V, R]{
		t:    t,
		name: name,
	}
}

// WithReturn configures the mock to return r for every call.
func (m *MockAction[V, R]) WithReturn(r R) *MockAction[V, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = r
	m.returnFn = nil
	return m
}

// WithFunc configures the mock to compute its result with fn.
func (m *MockAction[V, R]) WithFunc(fn func(V) R) *MockAction[V, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnFn = fn
	return m
}

// WithPanic configures the mock to panic with msg after recording the call.
// This is useful for verifying that pipelines let action panics through.
func (m *MockAction[V, R]) WithPanic(msg string) *MockAction[V, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// InSequence records every call of the mock into s.
func (m *MockAction[V, R]) InSequence(s *Sequence) *MockAction[V, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = s
	return m
}

// Call records v and returns the configured result.
func (m *MockAction[V, R]) Call(v V) R {
	atomic.AddInt64(&m.callCount, 1)

	m.mu.Lock()
	m.inputs = append(m.inputs, v)
	returnVal, returnFn, panicMsg, sequence := m.returnVal, m.returnFn, m.panicMsg, m.sequence
	m.mu.Unlock()

	sequence.record(m.name)
	if panicMsg != "" {
		panic(panicMsg)
	}
	if returnFn != nil {
		return returnFn(v)
	}
	return returnVal
}

// Name returns the name of the mock.
func (m *MockAction[V, R]) Name() string {
	return m.name
}

// CallCount returns the number of times Call has been invoked.
func (m *MockAction[V, R]) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// Inputs returns a copy of every recorded input in call order.
func (m *MockAction[V, R]) Inputs() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.inputs)
}

// LastInput returns the input from the most recent call.
func (m *MockAction[V, R]) LastInput() V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.inputs) == 0 {
		var zero V
		return zero
	}
	return m.inputs[len(m.inputs)-1]
}

// Reset clears all call tracking.
func (m *MockAction[V, R]) Reset() {
	atomic.StoreInt64(&m.callCount, 0)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = nil
}

// MockSupplier is a configurable stand-in for an OrElse fallback.
type MockSupplier[R any] struct {
	action *MockAction[struct{}, R]
}

// NewMockSupplier creates a mock fallback returning the zero R until configured.
func NewMockSupplier[R any](t *testing.T, name string) *MockSupplier[R] {
	return &MockSupplier[R]{action: NewMockAction[struct{}, R](t, name)}
}

// WithReturn configures the mock to return r for every call.
func (m *MockSupplier[R]) WithReturn(r R) *MockSupplier[R] {
	m.action.WithReturn(r)
	return m
}

// WithFunc configures the mock to compute its result with fn.
func (m *MockSupplier[R]) WithFunc(fn func() R) *MockSupplier[R] {
	m.action.WithFunc(func(struct{}) R { return fn() })
	return m
}

// InSequence records every call of the mock into s.
func (m *MockSupplier[R]) InSequence(s *Sequence) *MockSupplier[R] {
	m.action.InSequence(s)
	return m
}

// Call records the call and returns the configured result.
func (m *MockSupplier[R]) Call() R {
	return m.action.Call(struct{}{})
}

// Name returns the name of the mock.
func (m *MockSupplier[R]) Name() string {
	return m.action.Name()
}

// CallCount returns the number of times Call has been invoked.
func (m *MockSupplier[R]) CallCount() int {
	return m.action.CallCount()
}

// Reset clears all call tracking.
func (m *MockSupplier[R]) Reset() {
	m.action.Reset()
}

// Assertion Helpers

// AssertCalled verifies that a mock was called exactly n times.
func AssertCalled(t *testing.T, mock Recorder, expectedCalls int) {
	t.Helper()
	actual := mock.CallCount()
	if actual != expectedCalls {
		t.Errorf("expected %s to be called %d times, got %d", mock.Name(), expectedCalls, actual)
	}
}

// AssertNotCalled verifies that a mock was never called.
func AssertNotCalled(t *testing.T, mock Recorder) {
	t.Helper()
	AssertCalled(t, mock, 0)
}

// AssertCalledWith verifies that a mock action was called with specific input.
func AssertCalledWith[V comparable, R any](t *testing.T, mock *MockAction[V, R], expectedInput V) {
	t.Helper()
	if !slices.Contains(mock.Inputs(), expectedInput) {
		t.Errorf("expected %s to be called with %v, got %v", mock.Name(), expectedInput, mock.Inputs())
	}
}

// AssertOrder verifies that the sequence recorded exactly the given mock names.
func AssertOrder(t *testing.T, sequence *Sequence, expected ...string) {
	t.Helper()
	actual := sequence.Names()
	if !slices.Equal(actual, expected) {
		t.Errorf("expected call order %v, got %v", expected, actual)
	}
}
