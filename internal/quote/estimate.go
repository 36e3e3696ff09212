package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"feed-catalog/internal/catalog"
)

var (
	bagMultiplier  = decimal.RequireFromString("1.8")
	bulkMultiplier = decimal.NewFromInt(35)
	unitMultiplier = decimal.NewFromInt(1)
)

// ProductLookup resolves catalog products by id.
type ProductLookup interface {
	ByID(id string) (catalog.Product, bool)
}

// LineItem is one product selection in a quote.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// SizeMultiplier prices a size label relative to the unit price.
// "1 ton" is checked last so it wins over "50 lb" when both appear.
func SizeMultiplier(size string) decimal.Decimal {
	m := unitMultiplier
	if strings.Contains(size, "50 lb") {
		m = bagMultiplier
	}
	if strings.Contains(size, "1 ton") {
		m = bulkMultiplier
	}
	return m
}

// Estimate totals price × quantity × size multiplier over items. Items whose
// product does not resolve contribute nothing.
func Estimate(products ProductLookup, items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		p, ok := products.ByID(item.ProductID)
		if !ok {
			continue
		}
		line := decimal.NewFromFloat(p.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Mul(SizeMultiplier(item.Size))
		total = total.Add(line)
	}
	return total
}

// FormatTotal renders an estimate with two decimals.
func FormatTotal(total decimal.Decimal) string {
	return total.StringFixed(2)
}
