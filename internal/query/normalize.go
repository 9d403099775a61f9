package query

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// contractionRe matches English contraction suffixes such as "'m" in "i'm".
var contractionRe = regexp.MustCompile(`(\pL)['’](?:s|m|re|ve|ll|d)\b`)

// normalize folds width and case so "Ｐｈｏｎｅ ＄５００" reads as "phone $500".
// Contraction suffixes are dropped: "i'm" becomes "i", "what's" becomes "what".
func normalize(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	s = contractionRe.ReplaceAllString(s, "$1")
	return strings.Join(strings.Fields(s), " ")
}

// tokenize splits normalized text into words. Inner hyphens are kept so that
// "high-end" and "e-reader" stay whole.
func tokenize(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "-")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// stem reduces a word to its English stem. Short words are returned as-is;
// stemming them collides too often ("ups" and "up").
func stem(word string) string {
	if len([]rune(word)) <= 3 {
		return word
	}
	s, err := snowball.Stem(word, "english", true)
	if err != nil || s == "" {
		return word
	}
	return s
}

func stemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = stem(w)
	}
	return out
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return tok != ""
}
