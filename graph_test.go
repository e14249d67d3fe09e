package nullz

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGraph(t *testing.T) {
	half := AndThen[maybe[int]](func(x int) maybe[int] { return some(x / 2) })
	fallback := OrElse(func() maybe[int] { return some(0) })
	format := Transform[maybe[int], maybe[string]](func(x int) string { return "" })

	t.Run("Policy Table", func(t *testing.T) {
		g, err := Append3(half, fallback, format).Graph()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		edges := map[[2]string]string{
			{"input", "0:value"}:        GraphEdgeHas,
			{"input", "0:empty"}:        GraphEdgeMissing,
			{"0:value", "1:value"}:      GraphEdgeInvoke,
			{"0:value", "1:empty"}:      GraphEdgeInvoke,
			{"0:empty", "1:empty"}:      GraphEdgeSkip,
			{"1:value", "2:value"}:      GraphEdgeSkip,
			{"1:empty", "2:value"}:      GraphEdgeInvoke,
			{"1:empty", "2:empty"}:      GraphEdgeInvoke,
			{"2:value", "output:value"}: GraphEdgeInvoke,
			{"2:empty", "output:empty"}: GraphEdgeSkip,
		}

		for pair, label := range edges {
			edge, err := g.Edge(pair[0], pair[1])
			if err != nil {
				t.Errorf("missing edge %s -> %s: %v", pair[0], pair[1], err)
				continue
			}
			if got := edge.Properties.Attributes["label"]; got != label {
				t.Errorf("edge %s -> %s: expected label %q, got %q", pair[0], pair[1], label, got)
			}
		}

		size, err := g.Size()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if size != len(edges) {
			t.Errorf("expected %d edges, got %d", len(edges), size)
		}

		order, err := g.Order()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// input + two states per step + two outputs
		if order != 1+2*3+2 {
			t.Errorf("expected 9 vertices, got %d", order)
		}
	})

	t.Run("Transform Cannot Reach Empty From Value", func(t *testing.T) {
		g, err := format.Graph()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := g.Edge("0:value", "output:empty"); err == nil {
			t.Error("transform value path must not lead to an empty output")
		}
		if _, err := g.Edge("0:empty", "output:value"); err == nil {
			t.Error("transform empty path must not lead to a value")
		}
	})

	t.Run("WriteDOT", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Append(half, fallback).WriteDOT(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dot := buf.String()
		if !strings.Contains(dot, "digraph") {
			t.Errorf("expected a directed graph, got:\n%s", dot)
		}
		for _, vertex := range []string{"input", "0:value", "1:empty", "output:value"} {
			if !strings.Contains(dot, vertex) {
				t.Errorf("expected vertex %q in output:\n%s", vertex, dot)
			}
		}
	})

	t.Run("Zero Pipeline", func(t *testing.T) {
		var empty Pipeline[maybe[int], maybe[int]]
		if _, err := empty.Graph(); !errors.Is(err, ErrEmptyPipeline) {
			t.Errorf("expected ErrEmptyPipeline, got %v", err)
		}
		if err := empty.WriteDOT(&bytes.Buffer{}); !errors.Is(err, ErrEmptyPipeline) {
			t.Errorf("expected ErrEmptyPipeline, got %v", err)
		}
	})
}
