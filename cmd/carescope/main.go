// Package main provides the carescope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "carescope",
		Short: "Care-tier scoring for senior care planning",
		Long: `Carescope scores guided care questionnaire answers and recommends one of
five care tiers, with an explainable rationale and risk flags.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newTiersCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
