package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/query"
)

var flagExplainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <preference>",
	Short: "Show how a preference is interpreted, without searching",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().BoolVar(&flagExplainJSON, "json", false, "Print the interpretation as JSON")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	prefs, err := a.engine.Explain(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if flagExplainJSON {
		return writeJSON(cmd.OutOrStdout(), prefs)
	}
	renderPreferences(cmd.OutOrStdout(), prefs, a.catalog.HasCategory(prefs.Category))
	return nil
}

func renderPreferences(w io.Writer, p query.Preferences, categoryKnown bool) {
	fmt.Fprintf(w, "\nprodfinder explain %q\n\n", p.Query)

	category := "(any)"
	if p.Category != "" {
		category = p.Category
		if !categoryKnown {
			category += "  (no products in catalog)"
		}
	}
	price := "(any)"
	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		price = formatPrice(*p.MinPrice) + " to " + formatPrice(*p.MaxPrice)
	case p.MaxPrice != nil:
		price = "up to " + formatPrice(*p.MaxPrice)
	case p.MinPrice != nil:
		price = "from " + formatPrice(*p.MinPrice)
	}
	terms := "(none)"
	if len(p.Terms) > 0 {
		terms = strings.Join(p.Terms, ", ")
	}

	fmt.Fprintf(w, "  Category:  %s\n", category)
	fmt.Fprintf(w, "  Price:     %s\n", price)
	fmt.Fprintf(w, "  Ranking:   %s\n", describeSort(p.Sort))
	fmt.Fprintf(w, "  Name:      %s\n", terms)
}

func describeSort(s query.SortOrder) string {
	switch s {
	case query.SortPremium:
		return "premium (price high to low)"
	case query.SortBudget:
		return "budget (price low to high)"
	default:
		return "default (rating high to low)"
	}
}
