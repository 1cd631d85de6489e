package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carescope/carescope/pkg/scoring"
)

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Print the care tiers and their score bands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Band edges mirror TierFromScore.
			bands := []struct {
				lo, hi int
			}{
				{0, 8}, {9, 16}, {17, 24}, {25, 39}, {40, -1},
			}
			for i, tier := range scoring.Tiers() {
				b := bands[i]
				if b.hi < 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%-26s %d+\n", tier, b.lo)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%-26s %d-%d\n", tier, b.lo, b.hi)
				}
			}
			return nil
		},
	}
}
