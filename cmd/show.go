package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/catalog"
)

const maxSuggestions = 5

var flagShowJSON bool

var showCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Show one product by id or (fuzzy) name",
	Long: `Display one catalog product.

The argument can be either:
  - A product id (e.g. 12)
  - A product name; partial names and small typos are accepted
    as long as they pick out a single product

Example:
  prodfinder show 12
  prodfinder show "galaxy s23"
  prodfinder show kindel paperwhite`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowJSON, "json", false, "Print the product as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	name := strings.Join(args, " ")

	p, err := a.catalog.Find(name)
	if err != nil {
		if errors.Is(err, catalog.ErrAmbiguousName) || errors.Is(err, catalog.ErrProductNotFound) {
			if s := a.catalog.Suggest(name, maxSuggestions); len(s) > 0 {
				renderSuggestions(cmd.OutOrStdout(), s)
			}
		}
		return err
	}

	if flagShowJSON {
		return writeJSON(cmd.OutOrStdout(), p)
	}
	renderProduct(cmd.OutOrStdout(), p)
	return nil
}

func renderProduct(w io.Writer, p catalog.Product) {
	fmt.Fprintf(w, "\n%s\n\n", heading(p.Name))
	fmt.Fprintf(w, "  ID:        %d\n", p.ID)
	fmt.Fprintf(w, "  Category:  %s\n", p.Label)
	fmt.Fprintf(w, "  Price:     %s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "  Rating:    %s\n", formatRating(p.Rating))
}

func renderSuggestions(w io.Writer, ps []catalog.Product) {
	fmt.Fprintln(w, "\nDid you mean:")
	for _, p := range ps {
		fmt.Fprintf(w, "  #%d  %s\n", p.ID, p.Name)
	}
	fmt.Fprintln(w)
}
