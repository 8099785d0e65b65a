package span

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/encodeous/loom/graph"
	"github.com/encodeous/loom/perf"
)

// ErrNoSpanningTree is the expected failure outcome: the edge set does not
// connect all terminals (possibly after elimination). No partial tree is
// returned alongside it.
var ErrNoSpanningTree = errors.New("loom: no spanning tree connects the terminals")

// ErrUnknownTerminal is returned when a terminal does not appear as an
// endpoint of any edge.
var ErrUnknownTerminal = errors.New("loom: terminal not present in edge set")

// Config describes one spanning-tree computation. It is read-only during
// Compute, so a single Config may serve concurrent Compute calls as long
// as its hooks are themselves safe (the FIB span Guide is not; use one
// guide per call).
type Config[V cmp.Ordered] struct {
	// Edges is the candidate edge set with weights. Weights only matter
	// when Prefer is nil.
	Edges graph.Weights[V]
	// Terminals are the vertices the tree must connect.
	Terminals []V
	// Start overrides the expansion origin. Defaults to the smallest
	// terminal.
	Start *V
	// Prefer orders candidate edges; the minimal edge wins. Nil compares
	// weights, with canonical edge order breaking ties.
	Prefer func(a, b graph.Edge[V]) int
	// Invert flips Prefer so the maximal edge wins.
	Invert bool
	// Eliminate permanently discards candidate edges it reports true for.
	Eliminate func(e graph.Edge[V]) bool
	// Reached is invoked once per vertex as it joins the tree.
	Reached func(v V)
	Logger  *slog.Logger
}

// Compute greedily grows a tree from the start vertex, always crossing the
// most preferred frontier edge, until every terminal is reached. The
// result is spur-pruned, so only edges that actually connect terminals
// remain. On failure no edge set is returned.
func Compute[V cmp.Ordered](cfg Config[V]) (graph.Weights[V], error) {
	if len(cfg.Terminals) == 0 {
		return graph.Weights[V]{}, nil
	}

	incident := make(map[V][]graph.Edge[V])
	for _, e := range cfg.Edges.Edges() {
		incident[e.A] = append(incident[e.A], e)
		incident[e.B] = append(incident[e.B], e)
	}

	required := make(map[V]struct{}, len(cfg.Terminals))
	for _, t := range cfg.Terminals {
		if _, ok := incident[t]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTerminal, t)
		}
		required[t] = struct{}{}
	}

	adding := slices.Min(cfg.Terminals)
	if cfg.Start != nil {
		adding = *cfg.Start
	}

	reached := make(map[V]struct{})
	reachable := make(map[graph.Edge[V]]struct{})
	result := make(graph.Weights[V])

	for {
		reached[adding] = struct{}{}
		if cfg.Reached != nil {
			cfg.Reached(adding)
		}
		delete(required, adding)
		for _, e := range incident[adding] {
			reachable[e] = struct{}{}
		}
		if len(required) == 0 {
			break
		}

		best, ok := pickEdge(&cfg, reached, reachable)
		if !ok {
			if cfg.Logger != nil {
				cfg.Logger.Debug("expansion stuck", "reached", len(reached), "missing", len(required))
			}
			return nil, ErrNoSpanningTree
		}
		result[best] = cfg.Edges[best]
		delete(reachable, best)
		if _, ok := reached[best.A]; !ok {
			adding = best.A
		} else {
			adding = best.B
		}
	}

	perf.SpansBuilt.Add(1)
	return graph.Prune(cfg.Terminals, result), nil
}

// pickEdge discards exhausted or eliminated candidates and returns the
// frontier edge minimal under the preference order. Candidates are
// scanned in canonical edge order, so ties resolve deterministically.
func pickEdge[V cmp.Ordered](cfg *Config[V], reached map[V]struct{}, reachable map[graph.Edge[V]]struct{}) (graph.Edge[V], bool) {
	candidates := make([]graph.Edge[V], 0, len(reachable))
	for e := range reachable {
		_, aIn := reached[e.A]
		_, bIn := reached[e.B]
		if aIn && bIn || cfg.Eliminate != nil && cfg.Eliminate(e) {
			delete(reachable, e)
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return graph.Edge[V]{}, false
	}
	slices.SortFunc(candidates, graph.Edge[V].Compare)

	best := candidates[0]
	for _, e := range candidates[1:] {
		if cfg.prefer(e, best) < 0 {
			best = e
		}
	}
	return best, true
}

func (cfg *Config[V]) prefer(a, b graph.Edge[V]) int {
	var c int
	if cfg.Prefer != nil {
		c = cfg.Prefer(a, b)
	} else {
		c = cmp.Compare(cfg.Edges[a], cfg.Edges[b])
	}
	if cfg.Invert {
		c = -c
	}
	return c
}
