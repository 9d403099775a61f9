package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/query"
	"github.com/kamusis/prodfinder/internal/search"
)

var (
	flagSearchK    int
	flagSearchAll  bool
	flagSearchJSON bool
	flagSearchWhy  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <preference>",
	Short: "Recommend products for a plain-language preference",
	Long: `Recommend products for a plain-language preference.

The preference is read by a few simple rules:
  - a price limit such as "under $500", "below 1.2k" or "$300 or less"
  - a product keyword such as "phone", "laptops" or "smart speaker"
  - "premium"/"best" ranks by price high to low, "budget"/"cheap" low to high;
    otherwise products are ranked by rating

Examples:
  prodfinder search 'phone under $500'
  prodfinder search "Best laptop"
  prodfinder search budget headphones -k 3`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchK, "limit", "k", 0, "Number of results to show (default from config, 5)")
	searchCmd.Flags().BoolVar(&flagSearchAll, "all", false, "Show every matching product")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().BoolVar(&flagSearchWhy, "why", false, "Show which rules admitted each product")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return query.ErrEmptyQuery
	}
	a, err := loadApp()
	if err != nil {
		return err
	}

	opts := search.Options{Limit: a.cfg.Limit}
	if cmd.Flags().Changed("limit") {
		opts.Limit = flagSearchK
	}
	if flagSearchAll {
		opts.Limit = 0
	}

	text := strings.Join(args, " ")
	resp, err := a.engine.Search(text, opts)
	if err != nil && !errors.Is(err, search.ErrNoMatches) {
		return err
	}

	w := cmd.OutOrStdout()
	if flagSearchJSON || a.cfg.Output == "json" {
		return writeJSON(w, resp)
	}
	if errors.Is(err, search.ErrNoMatches) {
		renderEmpty(w, err)
		return nil
	}
	renderResults(w, resp, flagSearchWhy)
	return nil
}

// renderResults prints the ranked table headed by the result count.
func renderResults(w io.Writer, resp *search.Response, why bool) {
	n := len(resp.Results)
	fmt.Fprintf(w, "\n%s\n", heading(fmt.Sprintf("Recommended for You (%d %s)", n, pluralize(n, "product", "products"))))
	if resp.Matched > n {
		fmt.Fprintf(w, "%s\n", dimIcon(fmt.Sprintf("showing %d of %d matches", n, resp.Matched)))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range resp.Results {
		p := r.Product
		fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\t%s", r.Rank, p.Name, p.Label, formatPrice(p.Price), formatRating(p.Rating))
		if why {
			fmt.Fprintf(tw, "\t%s", r.Why)
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

// renderEmpty prints the empty-state message.
func renderEmpty(w io.Writer, err error) {
	fmt.Fprintf(w, "\n  %s  No products found matching your preferences\n", warnIcon("⚠"))
	fmt.Fprintf(w, "     %s\n", err.Error())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot encode JSON: %w", err)
	}
	return nil
}
