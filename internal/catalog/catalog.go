// Package catalog loads and queries the static product catalog that every
// search runs against.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// typoDistance is the largest edit distance accepted when a name does not
// contain the query as a subsequence.
const typoDistance = 3

// Catalog is an immutable, validated list of products in file order.
type Catalog struct {
	products []Product
	source   string
}

// New builds a catalog from already-normalized products and validates it.
func New(products []Product) (*Catalog, error) {
	cp := make([]Product, len(products))
	copy(cp, products)
	c := &Catalog{products: cp, source: "(memory)"}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Products returns a copy of all products in file order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Validate checks every record and reports the first problem found.
func (c *Catalog) Validate() error {
	seen := make(map[int]int, len(c.products))
	for i, p := range c.products {
		switch {
		case p.ID <= 0:
			return fmt.Errorf("%w: record %d: id must be positive, got %d", ErrInvalidCatalog, i+1, p.ID)
		case p.Name == "":
			return fmt.Errorf("%w: record %d (id %d): name is empty", ErrInvalidCatalog, i+1, p.ID)
		case p.Category == "":
			return fmt.Errorf("%w: record %d (id %d): category is empty", ErrInvalidCatalog, i+1, p.ID)
		case p.Price < 0:
			return fmt.Errorf("%w: record %d (id %d): negative price %.2f", ErrInvalidCatalog, i+1, p.ID, p.Price)
		case p.Rating < 0 || p.Rating > 5:
			return fmt.Errorf("%w: record %d (id %d): rating %.1f outside 0-5", ErrInvalidCatalog, i+1, p.ID, p.Rating)
		}
		if prev, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: records %d and %d share id %d", ErrInvalidCatalog, prev, i+1, p.ID)
		}
		seen[p.ID] = i + 1
	}
	return nil
}

// Categories returns distinct categories sorted by name with product counts.
func (c *Catalog) Categories() []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for _, p := range c.products {
		if i, ok := idx[p.Category]; ok {
			out[i].Count++
			continue
		}
		idx[p.Category] = len(out)
		out = append(out, CategoryCount{Name: p.Category, Label: p.Label, Count: 1})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HasCategory reports whether any product belongs to category (case-insensitive).
func (c *Catalog) HasCategory(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, p := range c.products {
		if p.Category == category {
			return true
		}
	}
	return false
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id int) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
}

// Find resolves a product by numeric id, exact name, or a fuzzy name match
// that selects exactly one product.
func (c *Catalog) Find(query string) (Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Product{}, fmt.Errorf("%w: empty name", ErrProductNotFound)
	}
	if id, err := strconv.Atoi(q); err == nil {
		return c.ByID(id)
	}
	for _, p := range c.products {
		if strings.EqualFold(p.Name, q) {
			return p, nil
		}
	}

	candidates := c.Suggest(q, 0)
	switch len(candidates) {
	case 0:
		return Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, q)
	case 1:
		return candidates[0], nil
	default:
		return Product{}, fmt.Errorf("%w: %q matches %d products", ErrAmbiguousName, q, len(candidates))
	}
}

// Suggest returns products whose names fuzzily match query, best first.
// Names containing the query as a subsequence rank ahead of typo matches.
// limit <= 0 returns all candidates.
func (c *Catalog) Suggest(query string, limit int) []Product {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	names := make([]string, len(c.products))
	for i, p := range c.products {
		names[i] = p.Name
	}

	var out []Product
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		for _, r := range ranks {
			out = append(out, c.products[r.OriginalIndex])
		}
	} else {
		lq := strings.ToLower(q)
		type typo struct {
			idx  int
			dist int
		}
		var typos []typo
		for i, n := range names {
			if d := fuzzy.LevenshteinDistance(lq, strings.ToLower(n)); d <= typoDistance {
				typos = append(typos, typo{idx: i, dist: d})
			}
		}
		sort.SliceStable(typos, func(i, j int) bool { return typos[i].dist < typos[j].dist })
		for _, t := range typos {
			out = append(out, c.products[t.idx])
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
