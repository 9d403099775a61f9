package search

import (
	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/query"
)

// DefaultLimit is the number of recommendations shown when no limit is set.
const DefaultLimit = 5

// Result is one recommended product.
type Result struct {
	Product catalog.Product `json:"product"`
	Rank    int             `json:"rank"`
	Why     string          `json:"why"`
}

// Options controls truncation. Limit <= 0 disables truncation.
type Options struct {
	Limit int
}

// Response is a complete answer to one query.
type Response struct {
	Preferences query.Preferences `json:"preferences"`
	Matched     int               `json:"matched"` // matches before truncation
	Results     []Result          `json:"results"`
}
