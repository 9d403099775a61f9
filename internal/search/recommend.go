// Package search filters, ranks and truncates catalog products according to
// the preferences read from a query.
package search

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/query"
)

// Recommend filters products by prefs, sorts them for the preferred intent
// and truncates to opts.Limit. It returns the results and the number of
// products that matched before truncation.
func Recommend(products []catalog.Product, prefs query.Preferences, opts Options) ([]Result, int) {
	matched := Filter(products, prefs)
	matched, active := FilterByName(matched, prefs.Terms)
	SortProducts(matched, prefs.Sort)

	total := len(matched)
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	out := make([]Result, 0, len(matched))
	for i, p := range matched {
		out = append(out, Result{Product: p, Rank: i + 1, Why: why(p, prefs, active)})
	}
	return out, total
}

// why names the rules that admitted p.
func why(p catalog.Product, prefs query.Preferences, terms []string) string {
	var parts []string
	if prefs.Category != "" {
		parts = append(parts, "category="+prefs.Category)
	}
	if prefs.MinPrice != nil {
		parts = append(parts, "price>="+query.FormatAmount(*prefs.MinPrice))
	}
	if prefs.MaxPrice != nil {
		parts = append(parts, "price<="+query.FormatAmount(*prefs.MaxPrice))
	}
	name := strings.ToLower(p.Name)
	for _, t := range terms {
		if strings.Contains(name, t) {
			parts = append(parts, "name~"+t)
		}
	}
	parts = append(parts, "sort="+string(prefs.Sort))
	return strings.Join(parts, " ")
}

// Engine runs queries against one catalog.
type Engine struct {
	catalog *catalog.Catalog
	rules   *query.Rules
	log     zerolog.Logger
}

// NewEngine returns an Engine. A nil rules uses query.DefaultRules.
func NewEngine(cat *catalog.Catalog, rules *query.Rules, log zerolog.Logger) *Engine {
	if rules == nil {
		rules = query.DefaultRules()
	}
	return &Engine{catalog: cat, rules: rules, log: log}
}

// Explain parses text without searching.
func (e *Engine) Explain(text string) (query.Preferences, error) {
	prefs, err := query.Parse(text, e.rules)
	if err != nil {
		return query.Preferences{}, err
	}
	e.log.Debug().
		Str("query", prefs.Query).
		Str("category", prefs.Category).
		Str("sort", string(prefs.Sort)).
		Strs("terms", prefs.Terms).
		Interface("max_price", prefs.MaxPrice).
		Interface("min_price", prefs.MinPrice).
		Msg("query parsed")
	if prefs.Category != "" && !e.catalog.HasCategory(prefs.Category) {
		e.log.Warn().Str("category", prefs.Category).Msg("category has no products in catalog")
	}
	return prefs, nil
}

// Search parses text and returns the recommendations. It returns
// query.ErrEmptyQuery for blank text and ErrNoMatches, together with the
// parsed preferences, when nothing survives filtering.
func (e *Engine) Search(text string, opts Options) (*Response, error) {
	prefs, err := e.Explain(text)
	if err != nil {
		return nil, err
	}
	results, total := Recommend(e.catalog.Products(), prefs, opts)
	e.log.Debug().Int("matched", total).Int("returned", len(results)).Msg("search finished")

	resp := &Response{Preferences: prefs, Matched: total, Results: results}
	if len(results) == 0 {
		return resp, ErrNoMatches
	}
	return resp, nil
}

// Run is a one-shot Search without an Engine or logger.
func Run(cat *catalog.Catalog, text string, rules *query.Rules, opts Options) (*Response, error) {
	return NewEngine(cat, rules, zerolog.Nop()).Search(text, opts)
}
