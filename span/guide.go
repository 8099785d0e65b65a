package span

import (
	"cmp"
	"math"
	"slices"

	"github.com/encodeous/loom/graph"
)

// Guide turns converged FIBs into an edge preference for Compute: it
// always favours the edge closest to the terminal currently hardest to
// reach. A Guide is stateful (reached terminals drop out of its
// sequence); build a fresh one per Compute call.
type Guide[V cmp.Ordered] struct {
	// waysPerEdge records, per edge, the smallest distance any FIB entry
	// crossing that edge reports towards each terminal.
	waysPerEdge map[graph.Edge[V]]map[V]float64
	// sequence holds the observed terminals, hardest to reach first.
	sequence []V
}

func NewGuide[V cmp.Ordered](fibs map[V]graph.FIB[V]) *Guide[V] {
	g := &Guide[V]{
		waysPerEdge: make(map[graph.Edge[V]]map[V]float64),
	}
	longest := make(map[V]float64)
	for v, fib := range fibs {
		for dest, way := range fib {
			if cur, ok := longest[dest]; !ok || way.Dist > cur {
				longest[dest] = way.Dist
			}
			if way.Self {
				continue
			}
			e := graph.MustEdge(v, way.Nh)
			ways, ok := g.waysPerEdge[e]
			if !ok {
				ways = make(map[V]float64)
				g.waysPerEdge[e] = ways
			}
			if cur, ok := ways[dest]; !ok || way.Dist < cur {
				ways[dest] = way.Dist
			}
		}
	}
	for dest := range longest {
		g.sequence = append(g.sequence, dest)
	}
	slices.SortFunc(g.sequence, func(a, b V) int {
		if c := cmp.Compare(longest[b], longest[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return g
}

// First returns the hardest-to-reach terminal, the natural start vertex
// for the expansion. ok is false once every terminal has been reached.
func (g *Guide[V]) First() (V, bool) {
	if len(g.sequence) == 0 {
		var zero V
		return zero, false
	}
	return g.sequence[0], true
}

// Reached drops v from the sequence; an incorporated terminal no longer
// drives preference.
func (g *Guide[V]) Reached(v V) {
	if i := slices.Index(g.sequence, v); i >= 0 {
		g.sequence = slices.Delete(g.sequence, i, i+1)
	}
}

// Select compares two candidate edges by their recorded distance to the
// current head terminal; edges with no recorded way count as infinitely
// far.
func (g *Guide[V]) Select(a, b graph.Edge[V]) int {
	if len(g.sequence) == 0 {
		return 0
	}
	head := g.sequence[0]
	return cmp.Compare(g.distance(a, head), g.distance(b, head))
}

func (g *Guide[V]) distance(e graph.Edge[V], dest V) float64 {
	if d, ok := g.waysPerEdge[e][dest]; ok {
		return d
	}
	return math.Inf(1)
}

// GuidedConfig wires a fresh Guide into a Config over the given edges:
// expansion starts at the hardest terminal and always crosses the edge
// nearest to the terminal still hardest to reach.
func GuidedConfig[V cmp.Ordered](fibs map[V]graph.FIB[V], terminals []V, edges graph.Weights[V]) Config[V] {
	g := NewGuide(fibs)
	cfg := Config[V]{
		Edges:     edges,
		Terminals: terminals,
		Prefer:    g.Select,
		Reached:   g.Reached,
	}
	if first, ok := g.First(); ok {
		cfg.Start = &first
	}
	return cfg
}
