package nullz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// Vertex names and edge labels used by Graph.
const (
	GraphInput       = "input"
	GraphOutput      = "output"
	GraphValueState  = "value"
	GraphEmptyState  = "empty"
	GraphEdgeInvoke  = "invoke"
	GraphEdgeSkip    = "skip"
	GraphEdgeHas     = "has_value"
	GraphEdgeMissing = "null"
)

// Graph returns the dispatch state machine of the pipeline as a directed
// graph. Every step contributes two vertices, "<index>:value" and
// "<index>:empty", for the two paths it can be entered on; "input" fans out
// to the first step and the last step leads to "output:value" and
// "output:empty". Edges carry a "label" attribute of "invoke" when the step
// runs its action on that transition and "skip" when it does not.
//
// Building the graph never applies the pipeline.
func (p Pipeline[In, Out]) Graph() (graph.Graph[string, string], error) {
	if len(p.steps) == 0 {
		return nil, ErrEmptyPipeline
	}

	g := graph.New(graph.StringHash, graph.Directed())

	if err := g.AddVertex(GraphInput, graph.VertexAttribute("shape", "circle")); err != nil {
		return nil, err
	}
	for _, s := range p.steps {
		for _, state := range []string{GraphValueState, GraphEmptyState} {
			name := stateVertex(strconv.Itoa(s.Index), state)
			label := fmt.Sprintf("%s (%s)", s, state)
			if err := g.AddVertex(name, graph.VertexAttribute("label", label)); err != nil {
				return nil, err
			}
		}
	}
	for _, state := range []string{GraphValueState, GraphEmptyState} {
		name := stateVertex(GraphOutput, state)
		if err := g.AddVertex(name, graph.VertexAttribute("shape", "doublecircle")); err != nil {
			return nil, err
		}
	}

	first := strconv.Itoa(p.steps[0].Index)
	if err := g.AddEdge(GraphInput, stateVertex(first, GraphValueState), graph.EdgeAttribute("label", GraphEdgeHas)); err != nil {
		return nil, err
	}
	if err := g.AddEdge(GraphInput, stateVertex(first, GraphEmptyState), graph.EdgeAttribute("label", GraphEdgeMissing)); err != nil {
		return nil, err
	}

	for i, s := range p.steps {
		next := GraphOutput
		if i+1 < len(p.steps) {
			next = strconv.Itoa(p.steps[i+1].Index)
		}
		current := strconv.Itoa(s.Index)
		fromValue, fromEmpty := s.Policy.successors()

		if err := linkStates(g, stateVertex(current, GraphValueState), next, fromValue, s.Policy.InvokesOnValue()); err != nil {
			return nil, err
		}
		if err := linkStates(g, stateVertex(current, GraphEmptyState), next, fromEmpty, s.Policy.InvokesOnEmpty()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteDOT renders the pipeline's dispatch graph in the DOT language.
func (p Pipeline[In, Out]) WriteDOT(w io.Writer) error {
	g, err := p.Graph()
	if err != nil {
		return err
	}
	if err := draw.DOT(g, w, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return fmt.Errorf("failed to render pipeline graph: %w", err)
	}
	return nil
}

func linkStates(g graph.Graph[string, string], from, next string, targets []handoff, invoke bool) error {
	label, style := GraphEdgeSkip, "dashed"
	if invoke {
		label, style = GraphEdgeInvoke, "solid"
	}
	for _, target := range targets {
		state := GraphValueState
		if target == handoffAbsent {
			state = GraphEmptyState
		}
		err := g.AddEdge(from, stateVertex(next, state),
			graph.EdgeAttribute("label", label),
			graph.EdgeAttribute("style", style),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func stateVertex(prefix, state string) string {
	return prefix + ":" + state
}
