package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/estore-labs/electrostore/internal/domain/basket"
)

type BasketRepository struct {
	mu      sync.RWMutex
	baskets map[string]*domain.Basket // keyed by user id; one basket per user
}

func NewBasketRepository() *BasketRepository {
	return &BasketRepository{
		baskets: make(map[string]*domain.Basket),
	}
}

func (r *BasketRepository) FindByUserID(ctx context.Context, userID string) (*domain.Basket, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	basket, ok := r.baskets[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return basket.Clone(), nil
}

func (r *BasketRepository) Save(ctx context.Context, basket *domain.Basket) error {
	_ = ctx
	if basket == nil || basket.ID == "" || basket.UserID == "" {
		return fmt.Errorf("basket repository: id and user id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.baskets[basket.UserID] = basket.Clone()
	return nil
}
