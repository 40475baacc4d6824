package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "substrate",
		Short: "Selector-subscription state store for reactive Go UIs",
		Long: `Substrate is an external mutable store with fine-grained,
selector-based subscription.

Many independent consumers read slices of shared state and refresh only
when the slice they project actually changes. Stores are scoped through
providers, bindings handle change detection, and the engine stays a
small synchronous core.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
