package span

import (
	"sync"
	"testing"

	"github.com/encodeous/loom/graph"
	"github.com/encodeous/loom/route"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func meshWeights() graph.Weights[string] {
	w := make(graph.Weights[string])
	for _, e := range [][2]string{
		{"A", "D"}, {"E", "D"}, {"E", "F"}, {"E", "G"},
		{"G", "F"}, {"G", "H"}, {"H", "I"}, {"I", "D"},
		{"I", "J"}, {"J", "H"}, {"F", "C"}, {"B", "H"},
	} {
		w[graph.MustEdge(e[0], e[1])] = 1
	}
	return w
}

func assertConnects(t *testing.T, tree graph.Weights[string], terminals []string) {
	t.Helper()
	require.NotEmpty(t, tree)
	groups := graph.Groups(tree)
	for _, term := range terminals[1:] {
		assert.Contains(t, groups[terminals[0]], term)
	}
	// a tree has exactly one edge less than it has vertices
	assert.Len(t, tree, len(tree.Vertices())-1)
}

func TestSpanOverFlattenedMesh(t *testing.T) {
	terminals := []string{"A", "B", "C"}
	fibs := route.Route(terminals, meshWeights())
	tree, err := Compute(Config[string]{
		Edges:     route.Flatten(fibs, nil),
		Terminals: terminals,
	})
	require.NoError(t, err)
	assertConnects(t, tree, terminals)
}

func TestSpanFailure(t *testing.T) {
	tree, err := Compute(Config[string]{
		Edges: graph.Weights[string]{
			graph.MustEdge("A", "B"): 1,
			graph.MustEdge("C", "D"): 1,
		},
		Terminals: []string{"A", "C"},
	})
	assert.ErrorIs(t, err, ErrNoSpanningTree)
	assert.Nil(t, tree)
}

func TestSpanUnknownTerminal(t *testing.T) {
	_, err := Compute(Config[string]{
		Edges:     graph.Weights[string]{graph.MustEdge("A", "B"): 1},
		Terminals: []string{"A", "Z"},
	})
	assert.ErrorIs(t, err, ErrUnknownTerminal)
}

func TestSpanNoTerminals(t *testing.T) {
	tree, err := Compute(Config[string]{
		Edges: graph.Weights[string]{graph.MustEdge("A", "B"): 1},
	})
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestSpanSingleTerminal(t *testing.T) {
	tree, err := Compute(Config[string]{
		Edges:     graph.Weights[string]{graph.MustEdge("A", "B"): 1},
		Terminals: []string{"A"},
	})
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestSpanEliminate(t *testing.T) {
	direct := graph.MustEdge("A", "C")
	tree, err := Compute(Config[string]{
		Edges: graph.Weights[string]{
			graph.MustEdge("A", "B"): 1,
			graph.MustEdge("B", "C"): 1,
			direct:                   1,
		},
		Terminals: []string{"A", "C"},
		Eliminate: func(e graph.Edge[string]) bool { return e == direct },
	})
	require.NoError(t, err)
	assert.NotContains(t, tree, direct)
	assertConnects(t, tree, []string{"A", "C"})
}

func TestSpanInvert(t *testing.T) {
	edges := graph.Weights[string]{
		graph.MustEdge("A", "B"): 1,
		graph.MustEdge("B", "C"): 1,
		graph.MustEdge("A", "C"): 3,
	}
	cfg := Config[string]{Edges: edges, Terminals: []string{"A", "C"}}

	tree, err := Compute(cfg)
	require.NoError(t, err)
	want := graph.Weights[string]{
		graph.MustEdge("A", "B"): 1,
		graph.MustEdge("B", "C"): 1,
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("cheapest-first tree mismatch (-want +got):\n%s", diff)
	}

	cfg.Invert = true
	tree, err = Compute(cfg)
	require.NoError(t, err)
	want = graph.Weights[string]{graph.MustEdge("A", "C"): 3}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("inverted tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSpanReachedOrder(t *testing.T) {
	var order []string
	_, err := Compute(Config[string]{
		Edges: graph.Weights[string]{
			graph.MustEdge("a", "b"): 1,
			graph.MustEdge("b", "c"): 1,
		},
		Terminals: []string{"a", "c"},
		Reached:   func(v string) { order = append(order, v) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSpanStartOverride(t *testing.T) {
	var order []string
	start := "c"
	_, err := Compute(Config[string]{
		Edges: graph.Weights[string]{
			graph.MustEdge("a", "b"): 1,
			graph.MustEdge("b", "c"): 1,
		},
		Terminals: []string{"a", "c"},
		Start:     &start,
		Reached:   func(v string) { order = append(order, v) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestSpanConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	terminals := []string{"A", "B", "C"}
	cfg := Config[string]{
		Edges:     meshWeights(),
		Terminals: terminals,
	}
	baseline, err := Compute(cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := Compute(cfg)
			assert.NoError(t, err)
			assert.Equal(t, baseline, tree)
		}()
	}
	wg.Wait()
}
