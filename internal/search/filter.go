package search

import (
	"strings"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/query"
)

// Filter keeps products in the preferred category and price range. Both
// price bounds are inclusive.
func Filter(products []catalog.Product, prefs query.Preferences) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if prefs.Category != "" && p.Category != prefs.Category {
			continue
		}
		if prefs.MaxPrice != nil && p.Price > *prefs.MaxPrice {
			continue
		}
		if prefs.MinPrice != nil && p.Price < *prefs.MinPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByName narrows products to those whose name contains any of terms.
// Terms that appear in no product name are ignored, so filler words never
// empty the list. It returns the products and the terms that took effect.
func FilterByName(products []catalog.Product, terms []string) ([]catalog.Product, []string) {
	if len(terms) == 0 {
		return products, nil
	}
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = strings.ToLower(p.Name)
	}

	var active []string
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		for _, n := range names {
			if strings.Contains(n, t) {
				active = append(active, t)
				break
			}
		}
	}
	if len(active) == 0 {
		return products, nil
	}

	var out []catalog.Product
	for i, p := range products {
		for _, t := range active {
			if strings.Contains(names[i], t) {
				out = append(out, p)
				break
			}
		}
	}
	return out, active
}
