package graph

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FIB is a forwarding information base: the best known Way per destination
// terminal, owned by a single vertex.
type FIB[V cmp.Ordered] map[V]Way[V]

func (f FIB[V]) Clone() FIB[V] {
	return maps.Clone(f)
}

func (f FIB[V]) Equal(o FIB[V]) bool {
	return maps.Equal(f, o)
}

// String renders the FIB one destination per line in sorted order, for
// stable test assertions and debug logs.
func (f FIB[V]) String() string {
	out := make([]string, 0, len(f))
	for _, dest := range slices.Sorted(maps.Keys(f)) {
		out = append(out, fmt.Sprintf("%v via %v", dest, f[dest]))
	}
	return strings.Join(out, "\n")
}

// Weights maps canonical edges to their scalar weight. It doubles as the
// edge-set representation throughout the module; a zero-weight edge is
// still an edge.
type Weights[V cmp.Ordered] map[Edge[V]]float64

func (w Weights[V]) Clone() Weights[V] {
	return maps.Clone(w)
}

// Edges returns the edge set in canonical order.
func (w Weights[V]) Edges() []Edge[V] {
	edges := slices.Collect(maps.Keys(w))
	slices.SortFunc(edges, Edge[V].Compare)
	return edges
}

// Vertices returns every endpoint mentioned by the edge set, sorted.
func (w Weights[V]) Vertices() []V {
	seen := make(map[V]struct{}, len(w))
	for e := range w {
		seen[e.A] = struct{}{}
		seen[e.B] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
