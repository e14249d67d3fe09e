package nullz

import (
	"strconv"
	"testing"
)

// Benchmarks compare pipelines against the equivalent hand-written branches.

func BenchmarkPipeline(b *testing.B) {
	half := func(x int) maybe[int] {
		if x%2 != 0 {
			return none[int]()
		}
		return some(x / 2)
	}
	fallback := func() maybe[int] { return some(-1) }

	pipeline := Append3(
		AndThen[maybe[int]](half),
		OrElse(fallback),
		Transform[maybe[int], maybe[string]](strconv.Itoa),
	)

	handWritten := func(in maybe[int]) maybe[string] {
		n := in
		if n.HasValue() {
			n = half(n.Value())
		}
		if !n.HasValue() {
			n = fallback()
		}
		if !n.HasValue() {
			return none[string]()
		}
		return some(strconv.Itoa(n.Value()))
	}

	inputs := map[string]maybe[int]{
		"Value":        some(8),
		"ShortCircuit": some(7),
		"EmptyInput":   none[int](),
	}

	for name, input := range inputs {
		b.Run("Pipeline/"+name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = pipeline.Apply(input)
			}
		})
		b.Run("HandWritten/"+name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = handWritten(input)
			}
		})
	}
}

func BenchmarkAppend(b *testing.B) {
	inc := Transform[maybe[int], maybe[int]](func(x int) int { return x + 1 })

	b.Run("Build", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = Append4(inc, inc, inc, inc)
		}
	})

	b.Run("Apply/Depth16", func(b *testing.B) {
		p := inc
		for i := 1; i < 16; i++ {
			p = p.Then(inc)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = p.Apply(some(0))
		}
	})
}
