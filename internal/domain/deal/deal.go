package deal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("deal: not found")
	ErrMissingProductID = errors.New("deal: product id is required")
)

// Type enumerates the promotional rules the pricing engine recognizes.
type Type string

const (
	// TypeBOGO50 prices every second unit of a line at half the original price.
	TypeBOGO50 Type = "BOGO50"
)

// Recognized reports whether the type is a known promotional rule. Deals with
// unrecognized types are ignored during pricing.
func (t Type) Recognized() bool {
	return t == TypeBOGO50
}

type Deal struct {
	ID        string
	ProductID string
	Type      Type
	// ExpiresAt nil means the deal never expires.
	ExpiresAt *time.Time
}

func New(id, productID string, dealType Type, expiresAt *time.Time) (*Deal, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}
	return &Deal{
		ID:        id,
		ProductID: productID,
		Type:      dealType,
		ExpiresAt: expiresAt,
	}, nil
}

// IsActive evaluates expiry against the current wall clock. It is computed at
// read time so pricing reflects the request instant, not creation time.
func (d *Deal) IsActive() bool {
	return d.ExpiresAt == nil || d.ExpiresAt.After(time.Now())
}

// DiscountedUnitPrice returns the per-unit price the deal grants on the
// alternating units. Unrecognized types price at the original.
func (d *Deal) DiscountedUnitPrice(original decimal.Decimal) decimal.Decimal {
	switch d.Type {
	case TypeBOGO50:
		return original.Mul(decimal.NewFromFloat(0.5))
	default:
		return original
	}
}

// Description renders the human-readable entry appended to a receipt's
// applied-deals list, e.g. "BOGO50 for Laptop Pro X1".
func (d *Deal) Description(productName string) string {
	return fmt.Sprintf("%s for %s", d.Type, productName)
}

func (d *Deal) Clone() *Deal {
	if d == nil {
		return nil
	}
	clone := *d
	if d.ExpiresAt != nil {
		expiry := *d.ExpiresAt
		clone.ExpiresAt = &expiry
	}
	return &clone
}
