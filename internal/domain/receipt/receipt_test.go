package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLineTotalAlternatesUnitPrices(t *testing.T) {
	// Unit 0 is always charged at the original price; odd unit positions get
	// the after-deal price.
	item := Item{
		OriginalPrice:  dec("1200.00"),
		PriceAfterDeal: dec("600.00"),
		Quantity:       3,
	}
	assert.True(t, item.LineTotal().Equal(dec("3000")), "1200 + 600 + 1200")

	item.Quantity = 2
	assert.True(t, item.LineTotal().Equal(dec("1800")), "1200 + 600")
}

func TestLineTotalWithoutDeal(t *testing.T) {
	item := Item{
		OriginalPrice:  dec("25.00"),
		PriceAfterDeal: dec("25.00"),
		Quantity:       2,
	}
	assert.True(t, item.LineTotal().Equal(dec("50")))
}

func TestLineTotalZeroQuantity(t *testing.T) {
	item := Item{
		OriginalPrice:  dec("25.00"),
		PriceAfterDeal: dec("25.00"),
	}
	assert.True(t, item.LineTotal().IsZero())
}
