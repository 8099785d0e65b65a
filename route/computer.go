package route

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/encodeous/loom/graph"
	"github.com/encodeous/loom/perf"
)

// Computer maintains per-vertex FIBs over a mutable graph and terminal set
// using work-list distance-vector relaxation. Mutations mark vertices
// dirty; Update drains the dirty queue to a fixpoint. FIBs must not be
// consumed between a mutation and the next Update (IsUpdated reports
// whether they are trustworthy).
//
// A Computer is not safe for concurrent use.
type Computer[V cmp.Ordered] struct {
	terminals  map[V]struct{}
	neighbours map[V]map[V]float64
	fibs       map[V]graph.FIB[V]
	queue      []V
	queued     map[V]struct{}
	log        *slog.Logger
}

type Option[V cmp.Ordered] func(*Computer[V])

// WithLogger makes the engine emit debug events to l.
func WithLogger[V cmp.Ordered](l *slog.Logger) Option[V] {
	return func(c *Computer[V]) {
		c.log = l
	}
}

// WithTerminals seeds the initial terminal set.
func WithTerminals[V cmp.Ordered](terminals ...V) Option[V] {
	return func(c *Computer[V]) {
		for _, t := range terminals {
			c.AddTerminal(t)
		}
	}
}

// WithEdges seeds the initial edge set.
func WithEdges[V cmp.Ordered](edges graph.Weights[V]) Option[V] {
	return func(c *Computer[V]) {
		c.AddEdges(edges)
	}
}

func NewComputer[V cmp.Ordered](opts ...Option[V]) *Computer[V] {
	c := &Computer[V]{
		terminals:  make(map[V]struct{}),
		neighbours: make(map[V]map[V]float64),
		fibs:       make(map[V]graph.FIB[V]),
		queued:     make(map[V]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddTerminal starts tracking reachability of v. It reports whether v was
// newly added.
func (c *Computer[V]) AddTerminal(v V) bool {
	if _, ok := c.terminals[v]; ok {
		return false
	}
	c.terminals[v] = struct{}{}
	c.invalidate(v)
	return true
}

// RemoveTerminal stops tracking v and drops it as a destination from every
// FIB. No other vertex is invalidated. It reports whether v was a
// terminal.
func (c *Computer[V]) RemoveTerminal(v V) bool {
	if _, ok := c.terminals[v]; !ok {
		return false
	}
	delete(c.terminals, v)
	for _, fib := range c.fibs {
		delete(fib, v)
	}
	return true
}

// AddEdge sets the symmetric weight of e, overwriting any previous weight.
// Both endpoints are invalidated.
func (c *Computer[V]) AddEdge(e graph.Edge[V], weight float64) {
	c.setNeighbour(e.A, e.B, weight)
	c.setNeighbour(e.B, e.A, weight)
	c.invalidate(e.A)
	c.invalidate(e.B)
}

func (c *Computer[V]) AddEdges(edges graph.Weights[V]) {
	for _, e := range edges.Edges() {
		c.AddEdge(e, edges[e])
	}
}

// RemoveEdge removes e from the graph. Both endpoints are invalidated.
func (c *Computer[V]) RemoveEdge(e graph.Edge[V]) {
	c.dropNeighbour(e.A, e.B)
	c.dropNeighbour(e.B, e.A)
	c.invalidate(e.A)
	c.invalidate(e.B)
}

// IsUpdated reports whether the FIBs are consistent with the current graph
// and terminal set, i.e. no vertex is pending recomputation.
func (c *Computer[V]) IsUpdated() bool {
	return len(c.queue) == 0
}

// Update drains the dirty queue to a fixpoint. On return the FIBs are the
// converged distance-vector state for the current graph. Termination is
// guaranteed for finite graphs with non-negative weights as long as no
// established destination has been cut off entirely: split horizon only
// suppresses two-vertex loops, so partitioning a terminal away from
// vertices still holding routes to it counts to infinity, like any plain
// distance-vector protocol. Remove a terminal before disconnecting it.
func (c *Computer[V]) Update() {
	start := time.Now()
	for len(c.queue) > 0 {
		v := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.queued, v)

		next := c.recompute(v)
		prev, ok := c.fibs[v]
		if len(next) == 0 && len(c.neighbours[v]) == 0 {
			// vertex left the graph entirely; a batch recomputation of the
			// final graph would not know it either
			delete(c.fibs, v)
			continue
		}
		if ok && prev.Equal(next) {
			continue
		}
		c.fibs[v] = next
		perf.FibRecomputes.Add(1)
		if c.log != nil {
			c.log.Debug("fib changed", "vertex", v, "entries", len(next))
		}
		// neighbours must re-derive from the new state; v itself is not
		// re-queued here
		for _, n := range slices.Sorted(maps.Keys(c.neighbours[v])) {
			c.invalidate(n)
		}
	}
	perf.ConvergeLatency.Add(float64(time.Since(start).Microseconds()))
}

// FIBs returns a deep-copied snapshot of every vertex FIB. Call Update
// first; between mutations and Update the contents are stale.
func (c *Computer[V]) FIBs() map[V]graph.FIB[V] {
	out := make(map[V]graph.FIB[V], len(c.fibs))
	for v, fib := range c.fibs {
		out[v] = fib.Clone()
	}
	return out
}

// EdgeLoads returns, per edge and per direction, the destination-to-
// distance pairs of every FIB entry whose next hop traverses the edge.
// Direction 0 means the FIB owner is the edge's first endpoint.
func (c *Computer[V]) EdgeLoads() map[graph.Edge[V]][2]map[V]float64 {
	loads := make(map[graph.Edge[V]][2]map[V]float64)
	for v, fib := range c.fibs {
		for dest, way := range fib {
			if way.Self {
				continue
			}
			e := graph.MustEdge(v, way.Nh)
			l, ok := loads[e]
			if !ok {
				l = [2]map[V]float64{make(map[V]float64), make(map[V]float64)}
				loads[e] = l
			}
			dir := 0
			if v == e.Second() {
				dir = 1
			}
			l[dir][dest] = way.Dist
		}
	}
	return loads
}

// recompute builds a fresh candidate FIB for v from its neighbours'
// current FIBs.
func (c *Computer[V]) recompute(v V) graph.FIB[V] {
	next := make(graph.FIB[V])
	if _, ok := c.terminals[v]; ok {
		next[v] = graph.SelfWay[V]()
	}
	for _, n := range slices.Sorted(maps.Keys(c.neighbours[v])) {
		w := c.neighbours[v][n]
		for dest, way := range c.fibs[n] {
			if !way.Self && way.Nh == v {
				continue // split horizon
			}
			cand := way.Dist + w
			if cur, ok := next[dest]; !ok || cand < cur.Dist {
				next[dest] = graph.Via(n, cand)
			}
		}
	}
	return next
}

func (c *Computer[V]) setNeighbour(a, b V, weight float64) {
	m, ok := c.neighbours[a]
	if !ok {
		m = make(map[V]float64)
		c.neighbours[a] = m
	}
	m[b] = weight
}

func (c *Computer[V]) dropNeighbour(a, b V) {
	delete(c.neighbours[a], b)
	if len(c.neighbours[a]) == 0 {
		delete(c.neighbours, a)
	}
}

func (c *Computer[V]) invalidate(v V) {
	if _, ok := c.queued[v]; ok {
		return
	}
	c.queued[v] = struct{}{}
	c.queue = append(c.queue, v)
	perf.Invalidations.Add(1)
}
