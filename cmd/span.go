package cmd

import (
	"fmt"

	"github.com/encodeous/loom/route"
	"github.com/encodeous/loom/span"
	"github.com/spf13/cobra"
)

var spanGuide bool

var spanCmd = &cobra.Command{
	Use:   "span",
	Short: "Compute a minimal tree of edges connecting the terminals",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		top, err := loadTopology(topologyPath)
		if err != nil {
			return err
		}
		weights := top.Weights()
		fibs := route.Route(top.Terminals, weights)

		var cfg span.Config[string]
		if spanGuide {
			cfg = span.GuidedConfig(fibs, top.Terminals, weights)
		} else {
			cfg = span.Config[string]{
				Edges:     route.Flatten(fibs, nil),
				Terminals: top.Terminals,
			}
		}
		cfg.Logger = log

		tree, err := span.Compute(cfg)
		if err != nil {
			return err
		}

		total := 0.0
		for _, e := range tree.Edges() {
			fmt.Printf("%s (weight %v)\n", e, weights[e])
			total += weights[e]
		}
		fmt.Printf("%d edges, total weight %v\n", len(tree), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spanCmd)
	spanCmd.Flags().BoolVarP(&spanGuide, "guide", "g", false, "prefer edges toward the hardest-to-reach terminal instead of flattened weights")
}
