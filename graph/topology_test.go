package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func weightsOf(edges ...Edge[string]) Weights[string] {
	w := make(Weights[string], len(edges))
	for _, e := range edges {
		w[e] = 1
	}
	return w
}

func TestAdjacencies(t *testing.T) {
	w := weightsOf(
		MustEdge("a", "b"),
		MustEdge("b", "c"),
		MustEdge("a", "c"),
	)
	adj := Adjacencies(w)
	want := map[string][]string{
		"a": {"b", "c"},
		"b": {"a", "c"},
		"c": {"a", "b"},
	}
	if diff := cmp.Diff(want, adj); diff != "" {
		t.Errorf("adjacencies mismatch (-want +got):\n%s", diff)
	}
}

func TestGroups(t *testing.T) {
	w := weightsOf(
		MustEdge("a", "b"),
		MustEdge("b", "c"),
		MustEdge("x", "y"),
	)
	groups := Groups(w)
	assert.Equal(t, []string{"a", "b", "c"}, groups["a"])
	assert.Equal(t, []string{"x", "y"}, groups["y"])
	// same component shares the same slice
	assert.Same(t, &groups["a"][0], &groups["c"][0])
}

func TestPruneCascades(t *testing.T) {
	// t1 - a - b - t2, with spur b - c - d hanging off
	w := weightsOf(
		MustEdge("t1", "a"),
		MustEdge("a", "b"),
		MustEdge("b", "t2"),
		MustEdge("b", "c"),
		MustEdge("c", "d"),
	)
	pruned := Prune([]string{"t1", "t2"}, w)
	want := weightsOf(
		MustEdge("t1", "a"),
		MustEdge("a", "b"),
		MustEdge("b", "t2"),
	)
	if diff := cmp.Diff(want, pruned); diff != "" {
		t.Errorf("prune mismatch (-want +got):\n%s", diff)
	}
	// input untouched
	assert.Len(t, w, 5)
}

func TestPruneKeepsLeafTerminals(t *testing.T) {
	w := weightsOf(
		MustEdge("t1", "a"),
		MustEdge("a", "t2"),
	)
	pruned := Prune([]string{"t1", "t2"}, w)
	assert.Len(t, pruned, 2)
}

func TestPruneIsolatedEdge(t *testing.T) {
	w := weightsOf(
		MustEdge("t1", "a"),
		MustEdge("x", "y"),
	)
	pruned := Prune([]string{"t1"}, w)
	want := weightsOf(MustEdge("t1", "a"))
	if diff := cmp.Diff(want, pruned); diff != "" {
		t.Errorf("prune mismatch (-want +got):\n%s", diff)
	}
}

func TestPruneFixtureUnchanged(t *testing.T) {
	// every non-terminal vertex already has degree >= 2
	w := weightsOf(
		MustEdge("A", "D"),
		MustEdge("E", "D"),
		MustEdge("E", "F"),
		MustEdge("E", "G"),
		MustEdge("G", "F"),
		MustEdge("G", "H"),
		MustEdge("H", "I"),
		MustEdge("I", "D"),
		MustEdge("I", "J"),
		MustEdge("J", "H"),
		MustEdge("F", "C"),
		MustEdge("B", "H"),
	)
	pruned := Prune([]string{"A", "B", "C"}, w)
	if diff := cmp.Diff(w, pruned); diff != "" {
		t.Errorf("expected prune to keep the graph (-want +got):\n%s", diff)
	}
}
