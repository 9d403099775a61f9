package query

import "errors"

// ErrEmptyQuery is returned when the query has no usable text.
var ErrEmptyQuery = errors.New("Please enter your preferences")
