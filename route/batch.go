package route

import (
	"cmp"

	"github.com/encodeous/loom/graph"
)

// Route computes converged FIBs for every vertex of the edge set in one
// call. It is the batch form of Computer: the same relaxation over a work
// list seeded with the whole graph, so its output is identical to an
// incremental Computer brought to the same final graph and terminal set.
func Route[V cmp.Ordered](terminals []V, edges graph.Weights[V]) map[V]graph.FIB[V] {
	c := NewComputer(WithTerminals(terminals...), WithEdges[V](edges))
	c.Update()
	return c.fibs
}
