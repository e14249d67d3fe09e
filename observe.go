package nullz

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Observed.
const (
	// Metrics.
	ObservedAppliedTotal        = metricz.Key("observed.applied.total")
	ObservedPresentTotal        = metricz.Key("observed.present.total")
	ObservedEmptyTotal          = metricz.Key("observed.empty.total")
	ObservedRecoveredTotal      = metricz.Key("observed.recovered.total")
	ObservedShortCircuitedTotal = metricz.Key("observed.short_circuited.total")
	ObservedDurationMs          = metricz.Key("observed.duration.ms")
	ObservedStepsTotal          = metricz.Key("observed.steps.total")

	// Spans.
	ObservedApplySpan = tracez.Key("observed.apply")

	// Tags.
	ObservedTagStepCount     = tracez.Tag("observed.step_count")
	ObservedTagPolicies      = tracez.Tag("observed.policies")
	ObservedTagInputPresent  = tracez.Tag("observed.input_present")
	ObservedTagOutputPresent = tracez.Tag("observed.output_present")

	// Hook event keys.
	ObservedEventApplied = hookz.Key("observed.applied")
	ObservedEventEmptied = hookz.Key("observed.emptied")
)

// ApplyEvent describes one application of an Observed pipeline.
// It is emitted via hookz after every Apply, and additionally under
// ObservedEventEmptied when the result is empty.
type ApplyEvent struct {
	Name          Name          // Observed pipeline name
	Steps         int           // Number of steps in the pipeline
	InputPresent  bool          // Whether the input held a value
	OutputPresent bool          // Whether the result holds a value
	Duration      time.Duration // How long the application took
	Timestamp     time.Time     // When the application finished
}

// Recovered reports whether an empty input produced a value, which only an
// OrElse step can do.
func (e ApplyEvent) Recovered() bool {
	return !e.InputPresent && e.OutputPresent
}

// ShortCircuited reports whether an input holding a value produced an empty
// result, i.e. some AndThen step returned an empty nullable.
func (e ApplyEvent) ShortCircuited() bool {
	return e.InputPresent && !e.OutputPresent
}

// Observed wraps a Pipeline with metrics, tracing and lifecycle hooks.
// The wrapped Pipeline is unchanged and can still be applied directly; only
// applications through Observed are recorded.
//
// # Observability
//
// Metrics:
//   - observed.applied.total: Counter of applications
//   - observed.present.total: Counter of results holding a value
//   - observed.empty.total: Counter of empty results
//   - observed.recovered.total: Counter of empty inputs that produced a value
//   - observed.short_circuited.total: Counter of present inputs that produced nothing
//   - observed.duration.ms: Gauge of the last application's duration
//   - observed.steps.total: Gauge of the pipeline's step count
//
// Traces:
//   - observed.apply: Span per application, tagged with step count, policies
//     and input/output presence
//
// Events (via hooks):
//   - observed.applied: Fired after every application
//   - observed.emptied: Fired when an application produced an empty result
//
// Example:
//
//	const LookupName = nullz.Name("user-lookup")
//	lookup := nullz.Observe(LookupName, pipeline)
//	defer lookup.Close()
//
//	lookup.OnEmptied(func(ctx context.Context, event nullz.ApplyEvent) error {
//	    if event.ShortCircuited() {
//	        log.Printf("%s: found input but no result", event.Name)
//	    }
//	    return nil
//	})
//
//	user := lookup.Apply(ctx, option.Some(id))
type Observed[In, Out any] struct {
	name     Name
	pipeline Pipeline[In, Out]
	clock    clockz.Clock
	mu       sync.RWMutex
	metrics  *metricz.Registry
	tracer   *tracez.Tracer
	hooks    *hookz.Hooks[ApplyEvent]
}

// Observe creates an Observed pipeline. The pipeline must have at least one
// step.
func Observe[In, Out any](name Name, pipeline Pipeline[In, Out]) *Observed[In, Out] {
	if pipeline.Len() == 0 {
		panic(ErrEmptyPipeline)
	}

	// Initialize observability
	metrics := metricz.New()
	metrics.Counter(ObservedAppliedTotal)
	metrics.Counter(ObservedPresentTotal)
	metrics.Counter(ObservedEmptyTotal)
	metrics.Counter(ObservedRecoveredTotal)
	metrics.Counter(ObservedShortCircuitedTotal)
	metrics.Gauge(ObservedDurationMs)
	metrics.Gauge(ObservedStepsTotal)

	return &Observed[In, Out]{
		name:     name,
		pipeline: pipeline,
		metrics:  metrics,
		tracer:   tracez.New(),
		hooks:    hookz.New[ApplyEvent](),
	}
}

// Apply feeds n through the wrapped pipeline and records the application.
// The context only carries the trace; the pipeline itself never blocks and
// cannot be canceled midway.
func (o *Observed[In, Out]) Apply(ctx context.Context, n In) Out {
	o.mu.RLock()
	name := o.name
	clock := o.getClock()
	o.mu.RUnlock()

	// Handle nil context
	if ctx == nil {
		ctx = context.Background()
	}

	steps := o.pipeline.Len()
	o.metrics.Counter(ObservedAppliedTotal).Inc()
	o.metrics.Gauge(ObservedStepsTotal).Set(float64(steps))

	ctx, span := o.tracer.StartSpan(ctx, ObservedApplySpan)
	span.SetTag(ObservedTagStepCount, strconv.Itoa(steps))
	span.SetTag(ObservedTagPolicies, o.pipeline.String())
	defer span.Finish()

	start := clock.Now()
	out, inPresent, outPresent := o.pipeline.observe(n)
	elapsed := clock.Since(start)

	span.SetTag(ObservedTagInputPresent, strconv.FormatBool(inPresent))
	span.SetTag(ObservedTagOutputPresent, strconv.FormatBool(outPresent))
	o.metrics.Gauge(ObservedDurationMs).Set(float64(elapsed.Milliseconds()))

	event := ApplyEvent{
		Name:          name,
		Steps:         steps,
		InputPresent:  inPresent,
		OutputPresent: outPresent,
		Duration:      elapsed,
		Timestamp:     clock.Now(),
	}

	if outPresent {
		o.metrics.Counter(ObservedPresentTotal).Inc()
	} else {
		o.metrics.Counter(ObservedEmptyTotal).Inc()
	}
	if event.Recovered() {
		o.metrics.Counter(ObservedRecoveredTotal).Inc()
	}
	if event.ShortCircuited() {
		o.metrics.Counter(ObservedShortCircuitedTotal).Inc()
	}

	_ = o.hooks.Emit(ctx, ObservedEventApplied, event) //nolint:errcheck
	if !outPresent {
		_ = o.hooks.Emit(ctx, ObservedEventEmptied, event) //nolint:errcheck
	}

	return out
}

// Pipeline returns the wrapped pipeline.
func (o *Observed[In, Out]) Pipeline() Pipeline[In, Out] {
	return o.pipeline
}

// Name returns the name of this observed pipeline.
func (o *Observed[In, Out]) Name() Name {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.name
}

// WithClock sets a custom clock for testing.
func (o *Observed[In, Out]) WithClock(clock clockz.Clock) *Observed[In, Out] {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clock = clock
	return o
}

// getClock returns the clock to use.
func (o *Observed[In, Out]) getClock() clockz.Clock {
	if o.clock == nil {
		return clockz.RealClock
	}
	return o.clock
}

// Metrics returns the metrics registry for this pipeline.
func (o *Observed[In, Out]) Metrics() *metricz.Registry {
	return o.metrics
}

// Tracer returns the tracer for this pipeline.
func (o *Observed[In, Out]) Tracer() *tracez.Tracer {
	return o.tracer
}

// OnApplied registers a handler called after every application.
// Handlers run asynchronously.
func (o *Observed[In, Out]) OnApplied(handler func(context.Context, ApplyEvent) error) error {
	_, err := o.hooks.Hook(ObservedEventApplied, handler)
	return err
}

// OnEmptied registers a handler called after every application whose result
// is empty. Handlers run asynchronously.
func (o *Observed[In, Out]) OnEmptied(handler func(context.Context, ApplyEvent) error) error {
	_, err := o.hooks.Hook(ObservedEventEmptied, handler)
	return err
}

// Close gracefully shuts down observability components.
func (o *Observed[In, Out]) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()
	return nil
}
