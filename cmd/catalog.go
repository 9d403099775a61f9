package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/catalog"
)

var (
	flagCatalogCategory string
	flagCatalogJSON     bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally within one category",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with product counts",
	Args:  cobra.NoArgs,
	RunE:  runCatalogCategories,
}

func init() {
	catalogListCmd.Flags().StringVar(&flagCatalogCategory, "category", "", "Only list products in this category")
	catalogCmd.PersistentFlags().BoolVar(&flagCatalogJSON, "json", false, "Print as JSON")
	catalogCmd.AddCommand(catalogListCmd, catalogCategoriesCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	products := a.catalog.Products()
	if flagCatalogCategory != "" {
		want := strings.ToLower(strings.TrimSpace(flagCatalogCategory))
		if !a.catalog.HasCategory(want) {
			return fmt.Errorf("unknown category %q (run 'prodfinder catalog categories')", flagCatalogCategory)
		}
		filtered := products[:0]
		for _, p := range products {
			if p.Category == want {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if flagCatalogJSON {
		return writeJSON(cmd.OutOrStdout(), products)
	}
	renderProducts(cmd.OutOrStdout(), products)
	return nil
}

func runCatalogCategories(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	cats := a.catalog.Categories()
	if flagCatalogJSON {
		return writeJSON(cmd.OutOrStdout(), cats)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nCategories (%d) in %s:\n\n", len(cats), a.catalog.Source())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range cats {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Label, c.Count)
	}
	return tw.Flush()
}

func renderProducts(w io.Writer, products []catalog.Product) {
	fmt.Fprintf(w, "\nProducts (%d):\n\n", len(products))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range products {
		fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Label, formatPrice(p.Price), formatRating(p.Rating))
	}
	_ = tw.Flush()
}
