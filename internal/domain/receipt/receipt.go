package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/estore-labs/electrostore/internal/domain/catalog"
)

// Item is one priced basket line. PriceAfterDeal is the unit price charged on
// the discounted unit positions; it equals OriginalPrice when no deal applies.
// DealApplied carries the deal-type label, or is empty.
type Item struct {
	ProductID      string
	ProductName    string
	Category       catalog.Category
	OriginalPrice  decimal.Decimal
	Quantity       int
	PriceAfterDeal decimal.Decimal
	DealApplied    string
}

// LineTotal prices the line unit by unit: even unit positions contribute the
// original price, odd positions the after-deal price. With no deal the two
// prices coincide, so every unit is charged at the original price.
func (it Item) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for unit := 0; unit < it.Quantity; unit++ {
		if unit%2 == 1 {
			total = total.Add(it.PriceAfterDeal)
		} else {
			total = total.Add(it.OriginalPrice)
		}
	}
	return total
}

// Receipt is derived from a basket snapshot; it is recomputed on every request
// and never persisted.
type Receipt struct {
	Items        []Item
	DealsApplied []string
	TotalPrice   decimal.Decimal
}
