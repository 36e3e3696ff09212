package catalog

import (
	"cmp"
	"slices"
	"strings"
)

type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"

	// AllCategories disables the category filter.
	AllCategories = "all"
)

// Query is the product listing view state.
type Query struct {
	Search   string  `json:"q"`
	Category string  `json:"category"`
	Sort     SortKey `json:"sort"`
}

func (k SortKey) Valid() bool {
	switch k {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Filter returns the products matching q, ordered by q.Sort. Ties and unknown
// sort keys keep the input order. The input slice is not modified.
func Filter(products []Product, q Query) []Product {
	needle := strings.ToLower(q.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !matches(p, needle) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && p.AnimalType != q.Category {
			continue
		}
		out = append(out, p)
	}

	if cmpFn := comparator(q.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func matches(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.AnimalType), needle)
}

func comparator(key SortKey) func(a, b Product) int {
	switch key {
	case SortNameAsc:
		return compareName
	case SortNameDesc:
		return func(a, b Product) int { return compareName(b, a) }
	case SortPriceAsc:
		return func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b Product) int { return cmp.Compare(b.Price, a.Price) }
	}
	return nil
}

func compareName(a, b Product) int {
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
