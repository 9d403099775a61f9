package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrices(t *testing.T) {
	cases := []struct {
		text           string
		hasMin, hasMax bool
		min, max       float64
	}{
		{text: "<$400 monitor", hasMax: true, max: 400},
		{text: "<= 250", hasMax: true, max: 250},
		{text: "under 500 keyboards", hasMax: true, max: 500},
		{text: "max 2k", hasMax: true, max: 2000},
		{text: "at least $100", hasMin: true, min: 100},
		{text: "between 900 and 300", hasMin: true, min: 300, hasMax: true, max: 900},
		{text: "$1,299.99", hasMax: true, max: 1299.99},
		{text: "iphone 15"},
		{text: "ps5"},
		{text: "max 256gb"},
		{text: "under 1tb"},
		{text: "$128gb"},
		{text: "under 500, please", hasMax: true, max: 500},
		{text: "no less than $500", hasMin: true, min: 500},
		{text: "not cheaper than 200", hasMin: true, min: 200},
		{text: "not more than 300", hasMax: true, max: 300},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			b := extractPrices(tc.text)
			assert.Equal(t, tc.hasMax, b.hasMax, "hasMax")
			assert.Equal(t, tc.hasMin, b.hasMin, "hasMin")
			assert.InDelta(t, tc.max, b.max, 1e-9)
			assert.InDelta(t, tc.min, b.min, 1e-9)
		})
	}
}

func TestStripSpans(t *testing.T) {
	b := extractPrices("phone under $500 please")
	assert.Equal(t, "phone            please", stripSpans("phone under $500 please", b.spans))
}
