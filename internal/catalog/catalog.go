package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrEmptyCatalog = errors.New("catalog has no products")

// Catalog is the read-only, ordered product set shared by every request.
// It is built once and never mutated, so it needs no locking.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New validates products and freezes them into a Catalog.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: empty id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %q: price must be positive", p.ID)
		}
		if len(p.Sizes) == 0 {
			return nil, fmt.Errorf("product %q: at least one size is required", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, clone(p))
	}
	return c, nil
}

// MustNew is New for package-level fixtures.
func MustNew(products []Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.products) }

// All returns the products in catalog order.
func (c *Catalog) All() []Product {
	return cloneAll(c.products)
}

func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return clone(c.products[i]), true
}

func (c *Catalog) ByCategory(category string) []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.AnimalType == category {
			out = append(out, clone(p))
		}
	}
	return out
}

// Categories lists the distinct animal types, sorted.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range c.products {
		if _, ok := seen[p.AnimalType]; ok {
			continue
		}
		seen[p.AnimalType] = struct{}{}
		out = append(out, p.AnimalType)
	}
	slices.Sort(out)
	return out
}

// CanonicalCategory resolves label to a known category ignoring case.
// Unknown labels come back unchanged.
func (c *Catalog) CanonicalCategory(label string) string {
	for _, p := range c.products {
		if strings.EqualFold(p.AnimalType, label) {
			return p.AnimalType
		}
	}
	return label
}

// Featured returns the first n products.
func (c *Catalog) Featured(n int) []Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	if n <= 0 {
		return []Product{}
	}
	return cloneAll(c.products[:n])
}

// Related returns up to n other products with the same animal type.
func (c *Catalog) Related(id string, n int) ([]Product, bool) {
	p, ok := c.ByID(id)
	if !ok {
		return nil, false
	}
	out := []Product{}
	for _, other := range c.products {
		if len(out) >= n {
			break
		}
		if other.ID != id && other.AnimalType == p.AnimalType {
			out = append(out, clone(other))
		}
	}
	return out, true
}

func clone(p Product) Product {
	p.Benefits = slices.Clone(p.Benefits)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

func cloneAll(in []Product) []Product {
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = clone(p)
	}
	return out
}
