package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domain "github.com/estore-labs/electrostore/internal/domain/deal"
)

type DealRepository struct {
	client *goredis.Client
}

func NewDealRepository(client *goredis.Client) *DealRepository {
	return &DealRepository{client: client}
}

type dealPayload struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	Type      string     `json:"type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (r *DealRepository) FindByProductID(ctx context.Context, productID string) (*domain.Deal, error) {
	val, err := r.client.Get(ctx, dealKeyPrefix+productID).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("deal repository: get: %w", err)
	}

	var payload dealPayload
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		return nil, fmt.Errorf("deal repository: decode: %w", err)
	}
	return &domain.Deal{
		ID:        payload.ID,
		ProductID: payload.ProductID,
		Type:      domain.Type(payload.Type),
		ExpiresAt: payload.ExpiresAt,
	}, nil
}

func (r *DealRepository) Save(ctx context.Context, deal *domain.Deal) error {
	if deal == nil || deal.ProductID == "" {
		return fmt.Errorf("deal repository: product id is required")
	}

	raw, err := json.Marshal(dealPayload{
		ID:        deal.ID,
		ProductID: deal.ProductID,
		Type:      string(deal.Type),
		ExpiresAt: deal.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("deal repository: encode: %w", err)
	}
	if err := r.client.Set(ctx, dealKeyPrefix+deal.ProductID, raw, 0).Err(); err != nil {
		return fmt.Errorf("deal repository: set: %w", err)
	}
	return nil
}
