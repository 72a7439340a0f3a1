// Command textnorm normalizes shorthand text, evaluates a transliteration
// dataset against references and serves both over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textnorm",
		Short:         "Text normalization and transliteration evaluation",
		Long:          "Spell out dates, currency amounts and units, transliterate the result and score it against references.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to the YAML config file")
	root.PersistentFlags().String("mode", "", "Transliteration engine: identity or http")
	root.PersistentFlags().String("endpoint", "", "Transliteration service URL (http mode)")
	root.PersistentFlags().String("lang", "", "Default language code for records without one")

	root.AddCommand(
		runCmd(),
		normalizeCmd(),
		serveCmd(),
	)
	return root
}
