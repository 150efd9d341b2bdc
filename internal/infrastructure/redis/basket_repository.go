package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	domain "github.com/estore-labs/electrostore/internal/domain/basket"
)

type BasketRepository struct {
	client *goredis.Client
}

func NewBasketRepository(client *goredis.Client) *BasketRepository {
	return &BasketRepository{client: client}
}

type basketPayload struct {
	ID     string              `json:"id"`
	UserID string              `json:"user_id"`
	Items  []basketItemPayload `json:"items"`
}

type basketItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r *BasketRepository) FindByUserID(ctx context.Context, userID string) (*domain.Basket, error) {
	val, err := r.client.Get(ctx, basketKeyPrefix+userID).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("basket repository: get: %w", err)
	}

	var payload basketPayload
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		return nil, fmt.Errorf("basket repository: decode: %w", err)
	}

	basket := &domain.Basket{
		ID:     payload.ID,
		UserID: payload.UserID,
		Items:  make([]domain.Item, 0, len(payload.Items)),
	}
	for _, item := range payload.Items {
		basket.Items = append(basket.Items, domain.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return basket, nil
}

func (r *BasketRepository) Save(ctx context.Context, basket *domain.Basket) error {
	if basket == nil || basket.ID == "" || basket.UserID == "" {
		return fmt.Errorf("basket repository: id and user id are required")
	}

	payload := basketPayload{
		ID:     basket.ID,
		UserID: basket.UserID,
		Items:  make([]basketItemPayload, 0, len(basket.Items)),
	}
	for _, item := range basket.Items {
		payload.Items = append(payload.Items, basketItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("basket repository: encode: %w", err)
	}
	if err := r.client.Set(ctx, basketKeyPrefix+basket.UserID, raw, 0).Err(); err != nil {
		return fmt.Errorf("basket repository: set: %w", err)
	}
	return nil
}
