package nullz

import (
	"slices"
	"strings"
)

// Pipeline is an ordered, immutable sequence of steps that turns a nullable
// In into a nullable Out.
//
// Pipelines are created by the step constructors (AndThen, OrElse, Transform)
// and grown by Append or Then. Appending never modifies its operands; it
// returns a new Pipeline whose steps are the left steps followed by the right
// steps. Applying a pipeline never modifies it either, so one Pipeline value
// can be shared and applied repeatedly. Concurrent Apply calls are safe as
// long as the wrapped actions are.
//
// Each step is compiled into two paths. The value path runs when the step is
// reached holding a value, the empty path when it is reached without one. A
// step tells its successor what it knows about the nullable it hands on, so
// presence is tested at most once per step and never when the predecessor
// already knows the answer:
//
//	AndThen:   value -> action result (tested by successor)   empty -> Null() (known empty)
//	OrElse:    value -> input unchanged (known present)       empty -> action result (tested by successor)
//	Transform: value -> Wrap(action result) (known present)   empty -> Null() (known empty)
//
// The result types of skipped steps are fixed by the type parameters at
// construction, so the empty result of a whole chain is produced without
// running any user action.
//
// The zero Pipeline has no steps. Applying or appending it panics with
// ErrEmptyPipeline.
type Pipeline[In, Out any] struct {
	steps   []Step
	probe   func(In) bool
	settled func(Out) bool
	present func(In) (Out, handoff)
	absent  func(In) (Out, handoff)
}

// Apply feeds n through every step and returns the final nullable.
// Panics raised by an action propagate to the caller untouched.
//
// Example:
//
//	square := option.AndThen(func(x int) option.Option[int] { return option.Some(x * x) })
//	square.Apply(option.Some(4))     // Some(16)
//	square.Apply(option.None[int]()) // None
func (p Pipeline[In, Out]) Apply(n In) Out {
	out, _ := p.dispatch(n, handoffUnknown)
	return out
}

// dispatch enters the pipeline on the path selected by h, testing presence
// only when h carries no knowledge.
func (p Pipeline[In, Out]) dispatch(n In, h handoff) (Out, handoff) {
	if p.present == nil {
		panic(ErrEmptyPipeline)
	}
	switch h {
	case handoffPresent:
		return p.present(n)
	case handoffAbsent:
		return p.absent(n)
	}
	if p.probe(n) {
		return p.present(n)
	}
	return p.absent(n)
}

// observe applies the pipeline and reports the presence of input and output.
// Output presence comes from the final hand-off when it is known.
func (p Pipeline[In, Out]) observe(n In) (out Out, inPresent, outPresent bool) {
	if p.present == nil {
		panic(ErrEmptyPipeline)
	}
	var h handoff
	inPresent = p.probe(n)
	if inPresent {
		out, h = p.present(n)
	} else {
		out, h = p.absent(n)
	}
	switch h {
	case handoffPresent:
		outPresent = true
	case handoffAbsent:
		outPresent = false
	default:
		outPresent = p.settled(out)
	}
	return out, inPresent, outPresent
}

// Then returns a new Pipeline running p followed by next. It is the method
// form of Append for suffixes that keep the nullable type, such as OrElse
// fallbacks:
//
//	lookup := cache.Then(nullz.OrElse(loadFromDisk)).Then(nullz.OrElse(defaultUser))
func (p Pipeline[In, Out]) Then(next Pipeline[Out, Out]) Pipeline[In, Out] {
	return Append(p, next)
}

// Len returns the number of steps.
func (p Pipeline[In, Out]) Len() int {
	return len(p.steps)
}

// Steps returns a copy of the step descriptors in application order.
func (p Pipeline[In, Out]) Steps() []Step {
	return slices.Clone(p.steps)
}

// Policies returns the policy of every step in application order.
func (p Pipeline[In, Out]) Policies() []Policy {
	policies := make([]Policy, len(p.steps))
	for i, s := range p.steps {
		policies[i] = s.Policy
	}
	return policies
}

// String renders the pipeline as its policies joined with " | ".
func (p Pipeline[In, Out]) String() string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Policy.String()
	}
	return strings.Join(names, " | ")
}

// Append returns a new Pipeline running every step of first followed by every
// step of second. Neither operand is modified. Append is associative:
// Append(Append(a, b), c) and Append(a, Append(b, c)) invoke the same actions
// in the same order for every input.
//
// The type parameters chain the two pipelines: the output nullable of first
// must be the input nullable of second. A mismatch is a compile error.
func Append[A, B, C any](first Pipeline[A, B], second Pipeline[B, C]) Pipeline[A, C] {
	if first.present == nil || second.present == nil {
		panic(ErrEmptyPipeline)
	}

	steps := make([]Step, 0, len(first.steps)+len(second.steps))
	steps = append(steps, first.steps...)
	for _, s := range second.steps {
		s.Index += len(first.steps)
		steps = append(steps, s)
	}

	return Pipeline[A, C]{
		steps:   steps,
		probe:   first.probe,
		settled: second.settled,
		present: func(a A) (C, handoff) {
			return second.dispatch(first.present(a))
		},
		absent: func(a A) (C, handoff) {
			return second.dispatch(first.absent(a))
		},
	}
}

// Append3 is Append for three pipelines.
func Append3[A, B, C, D any](first Pipeline[A, B], second Pipeline[B, C], third Pipeline[C, D]) Pipeline[A, D] {
	return Append(Append(first, second), third)
}

// Append4 is Append for four pipelines.
func Append4[A, B, C, D, E any](first Pipeline[A, B], second Pipeline[B, C], third Pipeline[C, D], fourth Pipeline[D, E]) Pipeline[A, E] {
	return Append(Append3(first, second, third), fourth)
}
