package query

import (
	"sort"
	"strings"
)

// defaultKeywords maps catalog categories to the words that select them.
var defaultKeywords = map[string][]string{
	"phone":             {"phone", "smartphone", "iphone", "mobile", "cellphone", "cell phone", "android"},
	"laptop":            {"laptop", "notebook", "macbook", "ultrabook", "chromebook"},
	"tablet":            {"tablet", "ipad"},
	"wearable":          {"wearable", "smartwatch", "watch", "fitness band"},
	"headphones":        {"headphone", "headphones", "earbuds", "earphones", "airpods", "headset"},
	"smart speaker":     {"smart speaker", "echo", "alexa", "homepod"},
	"portable speaker":  {"portable speaker", "bluetooth speaker", "speaker"},
	"television":        {"tv", "tvs", "television", "oled"},
	"camera":            {"camera", "dslr", "mirrorless", "gopro"},
	"smart home":        {"smart home", "thermostat", "doorbell"},
	"gaming console":    {"console", "gaming console", "playstation", "ps5", "nintendo"},
	"power bank":        {"power bank", "powerbank", "portable charger"},
	"mouse":             {"mouse", "mice"},
	"keyboard":          {"keyboard"},
	"storage":           {"storage", "ssd", "hdd", "hard drive", "flash drive"},
	"router":            {"router", "wifi", "wi-fi", "mesh"},
	"monitor":           {"monitor", "display"},
	"webcam":            {"webcam"},
	"microphone":        {"microphone", "mic"},
	"e-reader":          {"e-reader", "ereader", "kindle"},
	"accessory":         {"accessory", "hub", "adapter", "cable"},
	"tracker":           {"tracker", "airtag"},
	"vr headset":        {"vr", "vr headset", "virtual reality", "quest"},
	"printer":           {"printer"},
	"ups":               {"ups", "battery backup"},
	"gaming controller": {"controller", "gamepad", "joystick"},
}

var defaultPremiumWords = []string{"premium", "best", "top", "flagship", "high-end", "high end", "luxury", "top-rated"}

var defaultBudgetWords = []string{"budget", "cheap", "cheapest", "affordable", "inexpensive", "low-cost", "low cost", "value", "economical", "bargain"}

var defaultStopwords = []string{
	"a", "an", "the", "i", "im", "me", "my", "we", "you", "want", "need", "looking", "look", "find",
	"show", "get", "buy", "for", "with", "and", "or", "of", "to", "in", "on", "at", "is", "are",
	"be", "some", "something", "any", "good", "great", "nice", "new", "please", "that", "this",
	"which", "what", "can", "could", "would", "like", "recommend", "recommendation", "work",
	"but", "around", "about", "price", "priced", "dollars", "dollar", "usd", "bucks", "k",
}

// phrase is a keyword split into words, kept alongside the stems of those words.
type phrase struct {
	words []string
	stems []string
	value string
}

// Rules holds the keyword table and intent vocabularies used by Parse.
// The zero value is empty; use DefaultRules for the built-in vocabulary.
type Rules struct {
	categories []phrase
	premium    []phrase
	budget     []phrase
	stopwords  map[string]struct{}
}

// DefaultRules returns the built-in keyword table and intent words.
func DefaultRules() *Rules {
	r := &Rules{stopwords: make(map[string]struct{}, len(defaultStopwords))}
	for _, w := range defaultStopwords {
		r.stopwords[w] = struct{}{}
	}
	cats := make([]string, 0, len(defaultKeywords))
	for c := range defaultKeywords {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		r.AddKeywords(c, defaultKeywords[c]...)
	}
	r.AddPremiumWords(defaultPremiumWords...)
	r.AddBudgetWords(defaultBudgetWords...)
	return r
}

// AddKeywords maps each word or phrase to category. Later additions for an
// existing phrase replace the earlier mapping.
func (r *Rules) AddKeywords(category string, words ...string) {
	category = normalize(category)
	if category == "" {
		return
	}
	for _, w := range words {
		r.categories = upsertPhrase(r.categories, w, category)
	}
}

// AddPremiumWords extends the vocabulary that signals premium intent.
func (r *Rules) AddPremiumWords(words ...string) {
	for _, w := range words {
		r.premium = upsertPhrase(r.premium, w, string(SortPremium))
	}
}

// AddBudgetWords extends the vocabulary that signals budget intent.
func (r *Rules) AddBudgetWords(words ...string) {
	for _, w := range words {
		r.budget = upsertPhrase(r.budget, w, string(SortBudget))
	}
}

// Categories returns the distinct categories the keyword table can produce.
func (r *Rules) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range r.categories {
		if _, ok := seen[p.value]; ok {
			continue
		}
		seen[p.value] = struct{}{}
		out = append(out, p.value)
	}
	sort.Strings(out)
	return out
}

func (r *Rules) isStopword(tok string) bool {
	_, ok := r.stopwords[tok]
	return ok
}

func upsertPhrase(list []phrase, text, value string) []phrase {
	words := tokenize(normalize(text))
	if len(words) == 0 {
		return list
	}
	key := strings.Join(words, " ")
	for i := range list {
		if strings.Join(list[i].words, " ") == key {
			list[i].value = value
			return list
		}
	}
	return append(list, phrase{words: words, stems: stemAll(words), value: value})
}

// match is one phrase occurrence in a token list.
type match struct {
	pos   int
	width int
	value string
}

// findPhrases returns every occurrence of the given phrases in tokens. A token
// matches a phrase word when it is equal to it or shares its stem.
func findPhrases(list []phrase, tokens, stems []string) []match {
	var out []match
	for _, p := range list {
		n := len(p.words)
		for i := 0; i+n <= len(tokens); i++ {
			ok := true
			for j := 0; j < n; j++ {
				if tokens[i+j] != p.words[j] && stems[i+j] != p.stems[j] {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, match{pos: i, width: n, value: p.value})
			}
		}
	}
	return out
}

// best picks the widest match, breaking ties by earliest position.
func best(ms []match) (match, bool) {
	if len(ms) == 0 {
		return match{}, false
	}
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].width != ms[j].width {
			return ms[i].width > ms[j].width
		}
		return ms[i].pos < ms[j].pos
	})
	return ms[0], true
}
