package nullz

import "errors"

// ErrEmptyPipeline is raised when a Pipeline without steps is applied or
// appended. Only the zero Pipeline has no steps; every constructor returns a
// Pipeline with at least one. Apply and Append panic with it, ApplyAll
// returns it.
var ErrEmptyPipeline = errors.New("nullz: pipeline has no steps")
