package route

import (
	"cmp"

	"github.com/encodeous/loom/graph"
)

// Load is the forwarding load carried by one edge, split by direction.
// Index 0 accumulates FIB entries owned by the edge's first endpoint,
// index 1 those owned by the second.
type Load struct {
	Sum   [2]float64
	Count [2]int
}

// Tally aggregates the forwarding load induced by a full FIB map: per-edge
// directional sums and counts, the set of destinations observed, and the
// longest single distance seen.
type Tally[V cmp.Ordered] struct {
	PerEdge   map[graph.Edge[V]]*Load
	Terminals map[V]struct{}
	Longest   float64
}

// TallyForwarding walks every FIB entry with a next hop and charges the
// crossed edge in the owner's direction.
func TallyForwarding[V cmp.Ordered](fibs map[V]graph.FIB[V]) Tally[V] {
	t := Tally[V]{
		PerEdge:   make(map[graph.Edge[V]]*Load),
		Terminals: make(map[V]struct{}),
	}
	for v, fib := range fibs {
		for dest, way := range fib {
			t.Terminals[dest] = struct{}{}
			t.Longest = max(t.Longest, way.Dist)
			if way.Self {
				continue
			}
			e := graph.MustEdge(v, way.Nh)
			l, ok := t.PerEdge[e]
			if !ok {
				l = &Load{}
				t.PerEdge[e] = l
			}
			dir := 0
			if v == e.Second() {
				dir = 1
			}
			l.Sum[dir] += way.Dist
			l.Count[dir]++
		}
	}
	return t
}
