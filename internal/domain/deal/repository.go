package deal

import "context"

// Repository stores at most one deal per product id; saving a deal for a
// product that already has one replaces it.
type Repository interface {
	FindByProductID(ctx context.Context, productID string) (*Deal, error)
	Save(ctx context.Context, deal *Deal) error
}
