package catalog

import "errors"

// ErrInvalidCatalog indicates a catalog record failed validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrProductNotFound indicates no product matched a lookup.
var ErrProductNotFound = errors.New("product not found")

// ErrAmbiguousName indicates a fuzzy name lookup matched several products.
var ErrAmbiguousName = errors.New("ambiguous product name")
