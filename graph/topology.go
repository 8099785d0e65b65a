package graph

import (
	"cmp"
	"maps"
	"slices"
)

// Adjacencies extracts the undirected adjacency lists of the edge set.
// Neighbour lists are sorted.
func Adjacencies[V cmp.Ordered](edges Weights[V]) map[V][]V {
	adj := make(map[V][]V)
	for e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	for v := range adj {
		slices.Sort(adj[v])
	}
	return adj
}

// Groups computes the connected components of the edge set. Every vertex
// maps to the sorted member list of its component; vertices of the same
// component share the same slice.
func Groups[V cmp.Ordered](edges Weights[V]) map[V][]V {
	adj := Adjacencies(edges)
	groups := make(map[V][]V, len(adj))
	for _, start := range slices.Sorted(maps.Keys(adj)) {
		if _, ok := groups[start]; ok {
			continue
		}
		member := []V{start}
		visited := map[V]struct{}{start: {}}
		for i := 0; i < len(member); i++ {
			for _, n := range adj[member[i]] {
				if _, ok := visited[n]; ok {
					continue
				}
				visited[n] = struct{}{}
				member = append(member, n)
			}
		}
		slices.Sort(member)
		for _, v := range member {
			groups[v] = member
		}
	}
	return groups
}

// Prune returns a copy of the edge set with every dead-end spur removed: a
// non-terminal vertex of degree <= 1 is dropped together with its sole
// incident edge, cascading until a fixpoint. Terminals are never removed,
// whatever their degree.
func Prune[V cmp.Ordered](terminals []V, edges Weights[V]) Weights[V] {
	keep := make(map[V]struct{}, len(terminals))
	for _, t := range terminals {
		keep[t] = struct{}{}
	}
	pruned := edges.Clone()
	for {
		adj := Adjacencies(pruned)
		removed := false
		for _, v := range slices.Sorted(maps.Keys(adj)) {
			if _, ok := keep[v]; ok {
				continue
			}
			if len(adj[v]) > 1 {
				continue
			}
			for _, n := range adj[v] {
				delete(pruned, MustEdge(v, n))
			}
			removed = true
		}
		if !removed {
			return pruned
		}
	}
}
