package basket

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/estore-labs/electrostore/internal/domain/basket"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const storeService = "basket-store"

// Store owns basket persistence and line-item bookkeeping. Every mutation is
// persisted unconditionally; there is no dirty tracking. Concurrent mutation
// of the same user's basket is not guarded here (each user is expected to act
// on their own basket); distinct users never interfere.
type Store struct {
	baskets domain.Repository
	ids     IDGenerator
	log     observability.Logger
}

func NewStore(baskets domain.Repository, ids IDGenerator, tel observability.Observability) *Store {
	baseLog := observability.NopLogger()
	if tel != nil {
		baseLog = tel.Logger()
	}
	return &Store{
		baskets: baskets,
		ids:     ids,
		log:     baseLog.With(observability.F("service", storeService)),
	}
}

// BasketFor returns the user's basket, creating and persisting an empty one on
// first use. Baskets persist across sessions and are never deleted. An empty
// user id means the caller failed to resolve an identity first.
func (s *Store) BasketFor(ctx context.Context, userID string) (*domain.Basket, error) {
	if userID == "" {
		return nil, domain.ErrIdentityRequired
	}

	basket, err := s.baskets.FindByUserID(ctx, userID)
	if err == nil {
		return basket, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("basket: find: %w", err)
	}

	basket = domain.New(s.ids.NewID(), userID)
	if err := s.baskets.Save(ctx, basket); err != nil {
		return nil, fmt.Errorf("basket: create: %w", err)
	}
	logctx.FromOr(ctx, s.log).Info("basket_created",
		observability.F("basket_id", basket.ID),
		observability.F("user_id", userID),
	)
	return basket, nil
}

// MergeItem folds quantity into the basket's line for the product, appending a
// new line when none exists, and persists the basket.
func (s *Store) MergeItem(ctx context.Context, basket *domain.Basket, productID string, quantity int) (*domain.Basket, error) {
	basket.MergeItem(productID, quantity)
	if err := s.baskets.Save(ctx, basket); err != nil {
		return nil, fmt.Errorf("basket: merge item: %w", err)
	}
	return basket, nil
}

// ReduceItem subtracts quantity from the basket's line for the product,
// removing the line when it is exhausted, and persists the basket. A missing
// line is a no-op at the basket level: product existence has already been
// validated by the stock ledger.
func (s *Store) ReduceItem(ctx context.Context, basket *domain.Basket, productID string, quantity int) (*domain.Basket, error) {
	basket.ReduceItem(productID, quantity)
	if err := s.baskets.Save(ctx, basket); err != nil {
		return nil, fmt.Errorf("basket: reduce item: %w", err)
	}
	return basket, nil
}
