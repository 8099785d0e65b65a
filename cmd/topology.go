package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/encodeous/loom/graph"
	"github.com/goccy/go-yaml"
)

// TopologyEdge is one undirected weighted link of the topology file.
type TopologyEdge struct {
	A      string  `yaml:"a"`
	B      string  `yaml:"b"`
	Weight float64 `yaml:"weight"`
}

// Topology is the YAML schema consumed by the CLI: a weighted edge list
// plus the terminal set that must stay connected.
type Topology struct {
	Edges     []TopologyEdge `yaml:"edges"`
	Terminals []string       `yaml:"terminals"`
}

// Weights converts the edge list to the canonical weight map.
func (t *Topology) Weights() graph.Weights[string] {
	weights := make(graph.Weights[string], len(t.Edges))
	for _, e := range t.Edges {
		weights[graph.MustEdge(e.A, e.B)] = e.Weight
	}
	return weights
}

// TopologyValidator rejects loop edges, duplicate edges, non-positive
// weights, and terminals that never appear as an edge endpoint. The
// library itself is permissive about weights; the CLI is not.
func TopologyValidator(t *Topology) error {
	seen := make(map[graph.Edge[string]]struct{}, len(t.Edges))
	vertices := make(map[string]struct{})
	for _, te := range t.Edges {
		e, err := graph.NewEdge(te.A, te.B)
		if err != nil {
			return err
		}
		if _, ok := seen[e]; ok {
			return fmt.Errorf("duplicate edge found: %s, %s", te.A, te.B)
		}
		seen[e] = struct{}{}
		if te.Weight <= 0 {
			return fmt.Errorf("edge %s, %s has non-positive weight %v", te.A, te.B, te.Weight)
		}
		vertices[te.A] = struct{}{}
		vertices[te.B] = struct{}{}
	}
	if len(t.Terminals) == 0 {
		return fmt.Errorf("no terminals defined")
	}
	terms := make([]string, 0, len(t.Terminals))
	for _, term := range t.Terminals {
		if slices.Contains(terms, term) {
			return fmt.Errorf("duplicate terminal: %s", term)
		}
		terms = append(terms, term)
		if _, ok := vertices[term]; !ok {
			return fmt.Errorf("terminal %s not defined by any edge", term)
		}
	}
	return nil
}

func loadTopology(path string) (*Topology, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var top Topology
	err = yaml.Unmarshal(file, &top)
	if err != nil {
		return nil, err
	}
	err = TopologyValidator(&top)
	if err != nil {
		return nil, err
	}
	return &top, nil
}
