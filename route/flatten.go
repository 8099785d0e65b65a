package route

import (
	"cmp"

	"github.com/encodeous/loom/graph"
)

// Flattener converts one edge's tallied load into a scalar weight for
// spanning-tree selection.
type Flattener[V cmp.Ordered] func(longest float64, terminals int, e graph.Edge[V], sum0 float64, count0 int, sum1 float64, count1 int) float64

// DefaultFlatten weighs an edge by its combined distance sum, scaled up
// the fewer distinct routes it carries relative to the terminal count.
// Lightly-used edges come out heavier so the tree spreads load instead of
// piling onto a few edges; large aggregate distances are penalized.
func DefaultFlatten[V cmp.Ordered](longest float64, terminals int, e graph.Edge[V], sum0 float64, count0 int, sum1 float64, count1 int) float64 {
	return (sum0 + sum1) * float64(terminals+1-count0-count1)
}

// Flatten tallies fibs and applies fn to every loaded edge, yielding a
// weight map over exactly the edges that carry at least one route. A nil
// fn selects DefaultFlatten.
func Flatten[V cmp.Ordered](fibs map[V]graph.FIB[V], fn Flattener[V]) graph.Weights[V] {
	if fn == nil {
		fn = DefaultFlatten[V]
	}
	t := TallyForwarding(fibs)
	n := len(t.Terminals)
	out := make(graph.Weights[V], len(t.PerEdge))
	for e, l := range t.PerEdge {
		out[e] = fn(t.Longest, n, e, l.Sum[0], l.Count[0], l.Sum[1], l.Count[1])
	}
	return out
}
