package search

import (
	"sort"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/query"
)

// SortProducts orders products in place for the given intent:
//
//	premium: price desc, rating desc, id asc
//	budget:  price asc,  rating desc, id asc
//	default: rating desc, price asc,  id asc
func SortProducts(products []catalog.Product, order query.SortOrder) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch order {
		case query.SortPremium:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case query.SortBudget:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		default:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		}
		return a.ID < b.ID
	})
}
