package cmd

import (
	"fmt"
	"strings"

	"github.com/encodeous/loom/graph"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"i"},
	Short:   "Inspect topology connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		top, err := loadTopology(topologyPath)
		if err != nil {
			return err
		}
		weights := top.Weights()
		fmt.Printf("vertices: %d\n", len(weights.Vertices()))
		fmt.Printf("edges: %d\n", len(weights))
		fmt.Printf("terminals: %d\n", len(top.Terminals))

		groups := graph.Groups(weights)
		printed := make(map[string]struct{})
		n := 0
		for _, v := range weights.Vertices() {
			if _, ok := printed[v]; ok {
				continue
			}
			n++
			fmt.Printf("group %d: %s\n", n, strings.Join(groups[v], ", "))
			for _, member := range groups[v] {
				printed[member] = struct{}{}
			}
		}

		pruned := graph.Prune(top.Terminals, weights)
		fmt.Printf("prunable spur edges: %d\n", len(weights)-len(pruned))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
