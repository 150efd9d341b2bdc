package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/estore-labs/electrostore/internal/domain/deal"
)

type DealRepository struct {
	mu    sync.RWMutex
	deals map[string]*domain.Deal // keyed by product id; last save wins
}

func NewDealRepository() *DealRepository {
	return &DealRepository{
		deals: make(map[string]*domain.Deal),
	}
}

func (r *DealRepository) FindByProductID(ctx context.Context, productID string) (*domain.Deal, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	deal, ok := r.deals[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return deal.Clone(), nil
}

func (r *DealRepository) Save(ctx context.Context, deal *domain.Deal) error {
	_ = ctx
	if deal == nil || deal.ProductID == "" {
		return fmt.Errorf("deal repository: product id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deals[deal.ProductID] = deal.Clone()
	return nil
}
