package nullz

import "strconv"

// Policy selects how a step treats the presence or absence of a value.
// A step's policy is fixed when the step is constructed.
type Policy uint8

// Policies understood by Pipeline.
const (
	// AndThenPolicy invokes the action with the contained value and hands the
	// returned nullable on. Empty input skips the action.
	AndThenPolicy Policy = iota + 1

	// OrElsePolicy invokes the action only when the input is empty and hands
	// its result on. Present input passes through unchanged.
	OrElsePolicy

	// TransformPolicy maps the contained value with the action and rebinds
	// the plain result into a sibling nullable. Empty input skips the action.
	TransformPolicy
)

// String returns the policy's name as used in graphs and traces.
func (p Policy) String() string {
	switch p {
	case AndThenPolicy:
		return "and_then"
	case OrElsePolicy:
		return "or_else"
	case TransformPolicy:
		return "transform"
	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// InvokesOnValue reports whether the policy runs its action when the step is
// reached with a value.
func (p Policy) InvokesOnValue() bool {
	return p == AndThenPolicy || p == TransformPolicy
}

// InvokesOnEmpty reports whether the policy runs its action when the step is
// reached without a value.
func (p Policy) InvokesOnEmpty() bool {
	return p == OrElsePolicy
}

// handoff is what a step knows about the presence of the nullable it hands to
// its successor. A known state lets the successor skip its own HasValue test.
type handoff uint8

const (
	handoffUnknown handoff = iota
	handoffPresent
	handoffAbsent
)

// successors returns the hand-off states a step with this policy can produce
// from the value path and from the empty path.
func (p Policy) successors() (fromValue, fromEmpty []handoff) {
	switch p {
	case AndThenPolicy:
		return []handoff{handoffPresent, handoffAbsent}, []handoff{handoffAbsent}
	case OrElsePolicy:
		return []handoff{handoffPresent}, []handoff{handoffPresent, handoffAbsent}
	case TransformPolicy:
		return []handoff{handoffPresent}, []handoff{handoffAbsent}
	default:
		return nil, nil
	}
}

// Step describes one element of a Pipeline. Steps are descriptors only: the
// action they wrap is owned by the pipeline and never exposed.
type Step struct {
	Policy Policy
	Index  int
}

// String returns "<index>:<policy>".
func (s Step) String() string {
	return strconv.Itoa(s.Index) + ":" + s.Policy.String()
}
