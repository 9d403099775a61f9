package cmd

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatPrice renders a USD amount with thousands separators. Whole-dollar
// prices drop the cents: $1,099 and $749.99.
func formatPrice(v float64) string {
	cents := int64(math.Round(v * 100))
	whole, frac := cents/100, cents%100
	s := "$" + printer.Sprintf("%d", whole)
	if frac != 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	return s
}

// formatRating renders a rating with a star.
func formatRating(v float64) string {
	return fmt.Sprintf("★ %.1f", v)
}

// pluralize picks the singular or plural noun for n.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
