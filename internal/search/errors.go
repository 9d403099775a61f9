package search

import "errors"

// ErrNoMatches is returned when a query filters out every product.
var ErrNoMatches = errors.New("No products match your preferences. Try adjusting your criteria.")
