package query

import (
	"regexp"
	"strconv"
	"strings"
)

// amount is an optional "$", a number and an optional "k". The trailing
// boundary keeps "256gb" or "1tb" from reading as a price.
const amount = `\$?\s*(\d[\d,]*(?:\.\d+)?)(?:\s*(k))?\b`

var (
	rangeRe   = regexp.MustCompile(`\bbetween\s+` + amount + `\s*(?:and|-|to)\s*` + amount)
	atLeastRe = regexp.MustCompile(`\b(?:no|not)\s+(?:less|cheaper|lower)\s+than\s*` + amount)
	floorRe   = regexp.MustCompile(`(?:\b(?:over|above|more than|at least|starting at|from)\b|>=?)\s*` + amount)
	ceilingRe = regexp.MustCompile(`(?:\b(?:under|below|less than|cheaper than|no more than|not more than|maximum|max|up to|within|at most)\b|<=?)\s*` + amount)
	orLessRe  = regexp.MustCompile(amount + `\s*(?:dollars?|usd|bucks)?\s+or\s+(?:less|under|below|cheaper)\b`)
	bareRe    = regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d+)?)(?:\s*(k))?\b|\b(\d[\d,]*(?:\.\d+)?)(?:\s*(k))?\s*(?:dollars?|usd|bucks)\b`)
)

// priceBounds is what the price rules found in a query.
type priceBounds struct {
	min, max       float64
	hasMin, hasMax bool
	spans          [][2]int // byte ranges consumed by price phrases
}

func (b *priceBounds) addMax(v float64) {
	if !b.hasMax || v < b.max {
		b.max = v
	}
	b.hasMax = true
}

func (b *priceBounds) addMin(v float64) {
	if !b.hasMin || v > b.min {
		b.min = v
	}
	b.hasMin = true
}

func (b *priceBounds) overlaps(start, end int) bool {
	for _, s := range b.spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// extractPrices scans normalized text for price ranges, floors and ceilings.
// Negated comparators go first so "no less than" is a floor and "no more
// than" a ceiling.
// When several ceilings appear the smallest wins; among floors the largest.
// A bare dollar amount with no qualifier counts as a ceiling.
func extractPrices(text string) priceBounds {
	var b priceBounds

	for _, m := range rangeRe.FindAllStringSubmatchIndex(text, -1) {
		lo, ok1 := parseAmount(text, m[2], m[3], m[4], m[5])
		hi, ok2 := parseAmount(text, m[6], m[7], m[8], m[9])
		if !ok1 || !ok2 {
			continue
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		b.addMin(lo)
		b.addMax(hi)
		b.spans = append(b.spans, [2]int{m[0], m[1]})
	}

	passes := []struct {
		re  *regexp.Regexp
		add func(float64)
	}{
		{atLeastRe, b.addMin},
		{ceilingRe, b.addMax},
		{orLessRe, b.addMax},
		{floorRe, b.addMin},
	}
	for _, pass := range passes {
		for _, m := range pass.re.FindAllStringSubmatchIndex(text, -1) {
			if b.overlaps(m[0], m[1]) {
				continue
			}
			if v, ok := parseAmount(text, m[2], m[3], m[4], m[5]); ok {
				pass.add(v)
				b.spans = append(b.spans, [2]int{m[0], m[1]})
			}
		}
	}

	for _, m := range bareRe.FindAllStringSubmatchIndex(text, -1) {
		if b.overlaps(m[0], m[1]) {
			continue
		}
		v, ok := parseAmount(text, m[2], m[3], m[4], m[5])
		if !ok {
			v, ok = parseAmount(text, m[6], m[7], m[8], m[9])
		}
		if ok {
			b.addMax(v)
			b.spans = append(b.spans, [2]int{m[0], m[1]})
		}
	}
	return b
}

// parseAmount reads the number group [ns,ne) and the optional "k" group [ks,ke).
func parseAmount(text string, ns, ne, ks, ke int) (float64, bool) {
	if ns < 0 || ne < 0 {
		return 0, false
	}
	raw := strings.ReplaceAll(text[ns:ne], ",", "")
	raw = strings.TrimRight(raw, ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if ks >= 0 && ke > ks {
		v *= 1000
	}
	return v, true
}

// stripSpans blanks out the consumed byte ranges so later rules ignore them.
func stripSpans(text string, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, s := range spans {
		for i := s[0]; i < s[1] && i < len(b); i++ {
			b[i] = ' '
		}
	}
	return string(b)
}
