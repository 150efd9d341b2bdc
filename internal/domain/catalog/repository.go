package catalog

import (
	"context"
)

type Repository interface {
	FindByID(ctx context.Context, productID string) (*Product, error)
	Save(ctx context.Context, product *Product) error
}
