package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/encodeous/loom/route"
	"github.com/spf13/cobra"
)

var fibsCmd = &cobra.Command{
	Use:   "fibs",
	Short: "Compute converged forwarding tables for every vertex",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		top, err := loadTopology(topologyPath)
		if err != nil {
			return err
		}
		fibs := route.Route(top.Terminals, top.Weights())
		log.Debug("routing converged", "vertices", len(fibs), "terminals", len(top.Terminals))

		for _, v := range slices.Sorted(maps.Keys(fibs)) {
			fmt.Printf("%s:\n", v)
			for line := range strings.Lines(fibs[v].String()) {
				fmt.Printf("  %s", line)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fibsCmd)
}
