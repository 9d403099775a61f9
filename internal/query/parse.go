// Package query turns a free-text product preference into structured search
// preferences: a price ceiling (and floor), a category and a sort intent.
package query

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// SortOrder is the ranking intent read from a query.
type SortOrder string

const (
	SortDefault SortOrder = "default"
	SortPremium SortOrder = "premium"
	SortBudget  SortOrder = "budget"
)

// Preferences is what the heuristic extracted from one query.
type Preferences struct {
	Query    string    `json:"query"`
	MaxPrice *float64  `json:"max_price,omitempty"`
	MinPrice *float64  `json:"min_price,omitempty"`
	Category string    `json:"category,omitempty"`
	Sort     SortOrder `json:"sort"`
	Terms    []string  `json:"terms,omitempty"`
}

// String renders the preferences as space separated rule=value pairs.
func (p Preferences) String() string {
	var parts []string
	if p.Category != "" {
		parts = append(parts, "category="+p.Category)
	}
	if p.MinPrice != nil {
		parts = append(parts, "price>="+FormatAmount(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		parts = append(parts, "price<="+FormatAmount(*p.MaxPrice))
	}
	if len(p.Terms) > 0 {
		parts = append(parts, "terms="+strings.Join(p.Terms, ","))
	}
	parts = append(parts, "sort="+string(p.Sort))
	return strings.Join(parts, " ")
}

// FormatAmount prints a price without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Parse applies the query heuristic to text. A nil rules uses DefaultRules.
//
// Price phrases are read first and removed, then the keyword table picks the
// category (multi-word phrases win over single words, then the earliest
// word), then premium and budget words pick the sort order. Words left over
// that are not stopwords and longer than one rune become Terms.
func Parse(text string, rules *Rules) (Preferences, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	normalized := normalize(text)
	if normalized == "" {
		return Preferences{}, ErrEmptyQuery
	}

	prices := extractPrices(normalized)
	tokens := tokenize(stripSpans(normalized, prices.spans))
	if len(tokens) == 0 && !prices.hasMax && !prices.hasMin {
		return Preferences{}, ErrEmptyQuery
	}
	stems := stemAll(tokens)

	prefs := Preferences{Query: strings.TrimSpace(text), Sort: SortDefault}
	if prices.hasMax {
		v := prices.max
		prefs.MaxPrice = &v
	}
	if prices.hasMin {
		v := prices.min
		prefs.MinPrice = &v
	}

	consumed := make([]bool, len(tokens))
	consume := func(ms []match) {
		for _, m := range ms {
			for i := m.pos; i < m.pos+m.width; i++ {
				consumed[i] = true
			}
		}
	}

	catMatches := findPhrases(rules.categories, tokens, stems)
	consume(catMatches)
	if m, ok := best(catMatches); ok {
		prefs.Category = m.value
	}

	premium := findPhrases(rules.premium, tokens, stems)
	budget := findPhrases(rules.budget, tokens, stems)
	consume(premium)
	consume(budget)
	switch {
	case len(budget) > 0:
		prefs.Sort = SortBudget
	case len(premium) > 0:
		prefs.Sort = SortPremium
	}

	seen := map[string]struct{}{}
	for i, tok := range tokens {
		if consumed[i] || isNumeric(tok) || rules.isStopword(tok) || utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		prefs.Terms = append(prefs.Terms, tok)
	}
	return prefs, nil
}
