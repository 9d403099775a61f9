package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/query"
)

var (
	flagDebug   bool
	flagNoColor bool
	flagCatalog string
)

var rootCmd = &cobra.Command{
	Use:           "prodfinder",
	Short:         "Find products from a plain-language preference",
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true, // Execute prints them
	Long: `prodfinder turns a preference such as "phone under $500" or "premium
smartwatch" into a short, ranked list of products from a static catalog.

The catalog is bundled with the binary. Point catalog_path in
~/.prodfinder/config.yaml (or PRODFINDER_CATALOG) at a .json or .jsonl file
to search your own.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log heuristic decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file to search instead of the configured one")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, query.ErrEmptyQuery) {
			printErr("", err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
