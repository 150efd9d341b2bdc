package basket

import "context"

type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*Basket, error)
	Save(ctx context.Context, basket *Basket) error
}
