package search

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/query"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewEngine(cat, nil, zerolog.Nop())
}

func ids(results []Result) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Product.ID
	}
	return out
}

func TestEngineSearch_ExampleQueries(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		query string
		want  []int
	}{
		{query: "Phone under $500", want: []int{3, 6, 4, 5}},
		{query: "Best laptop", want: []int{9, 7, 8, 11, 10}},
		{query: "Budget headphones", want: []int{23, 22, 21, 20, 19}},
		{query: "Premium smartwatch", want: []int{17, 15, 16, 18}},
		{query: "cheap sony headphones", want: []int{19}},
		{query: "apple under $300", want: []int{46, 21, 25}},
		{query: "I'm looking for a phone under $500", want: []int{3, 6, 4, 5}},
		{query: "what's a good laptop", want: []int{7, 9, 8, 10, 11}},
		{query: "no less than $500 laptop", want: []int{7, 9, 8, 10, 11}},
		{query: "iphone 15 pro max 256gb", want: []int{1, 2, 3, 6, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			resp, err := e.Search(tc.query, Options{Limit: DefaultLimit})
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, ids(resp.Results)); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
			for i, r := range resp.Results {
				assert.Equal(t, i+1, r.Rank)
			}
		})
	}
}

func TestEngineSearch_Truncates(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Search("something nice", Options{Limit: DefaultLimit})
	require.NoError(t, err)
	assert.Len(t, resp.Results, DefaultLimit)
	assert.Equal(t, 50, resp.Matched)

	resp, err = e.Search("something nice", Options{Limit: 0})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 50)
}

func TestEngineSearch_NoMatches(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Search("phone under $50", Options{Limit: DefaultLimit})
	require.True(t, errors.Is(err, ErrNoMatches), "got %v", err)
	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Matched)
	assert.Equal(t, "phone", resp.Preferences.Category)
}

func TestEngineSearch_EmptyQuery(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Search("   ", Options{Limit: DefaultLimit})
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, query.ErrEmptyQuery), "got %v", err)
}

func TestRecommend_Why(t *testing.T) {
	ceiling := 500.0
	products := []catalog.Product{
		{ID: 1, Name: "Sony Phone", Category: "phone", Price: 400, Rating: 4},
		{ID: 2, Name: "Other Phone", Category: "phone", Price: 300, Rating: 5},
	}
	prefs := query.Preferences{Category: "phone", MaxPrice: &ceiling, Sort: query.SortBudget, Terms: []string{"sony"}}

	got, total := Recommend(products, prefs, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "category=phone price<=500 name~sony sort=budget", got[0].Why)
}

func TestFilter_InclusiveBounds(t *testing.T) {
	lo, hi := 100.0, 200.0
	products := []catalog.Product{
		{ID: 1, Category: "phone", Price: 99.99},
		{ID: 2, Category: "phone", Price: 100},
		{ID: 3, Category: "phone", Price: 200},
		{ID: 4, Category: "phone", Price: 200.01},
		{ID: 5, Category: "laptop", Price: 150},
	}
	got := Filter(products, query.Preferences{Category: "phone", MinPrice: &lo, MaxPrice: &hi})
	require.Len(t, got, 2)
	assert.Equal(t, []int{2, 3}, []int{got[0].ID, got[1].ID})

	all := Filter(products, query.Preferences{})
	assert.Len(t, all, len(products))
}

func TestFilterByName_IgnoresUnknownTerms(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "Sony WH-1000XM5"},
		{ID: 2, Name: "Bose QuietComfort 45"},
	}

	got, active := FilterByName(products, []string{"wireless"})
	assert.Len(t, got, 2)
	assert.Empty(t, active)

	got, active = FilterByName(products, []string{"wireless", "bose"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, []string{"bose"}, active)
}

func TestSortProducts_TieBreaks(t *testing.T) {
	base := []catalog.Product{
		{ID: 3, Price: 100, Rating: 4.5},
		{ID: 1, Price: 100, Rating: 4.5},
		{ID: 2, Price: 200, Rating: 4.0},
		{ID: 4, Price: 100, Rating: 4.8},
	}
	cases := map[query.SortOrder][]int{
		query.SortPremium: {2, 4, 1, 3},
		query.SortBudget:  {4, 1, 3, 2},
		query.SortDefault: {4, 1, 3, 2},
	}
	for order, want := range cases {
		t.Run(string(order), func(t *testing.T) {
			ps := append([]catalog.Product(nil), base...)
			SortProducts(ps, order)
			got := make([]int, len(ps))
			for i, p := range ps {
				got[i] = p.ID
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestRun_CustomRules(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	rules := query.DefaultRules()
	rules.AddKeywords("headphones", "cans")

	resp, err := Run(cat, "cans under $60", rules, Options{})
	require.NoError(t, err)
	assert.Equal(t, "headphones", resp.Preferences.Category)
	assert.Equal(t, []int{22, 23}, ids(resp.Results))
}
