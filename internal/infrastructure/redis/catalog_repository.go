package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	domain "github.com/estore-labs/electrostore/internal/domain/catalog"
)

type CatalogRepository struct {
	client *goredis.Client
}

func NewCatalogRepository(client *goredis.Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

type productPayload struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

func (r *CatalogRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	val, err := r.client.Get(ctx, productKeyPrefix+productID).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalog repository: get: %w", err)
	}

	var payload productPayload
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		return nil, fmt.Errorf("catalog repository: decode: %w", err)
	}
	return &domain.Product{
		ID:       payload.ID,
		Name:     payload.Name,
		Category: domain.Category(payload.Category),
		Price:    payload.Price,
		Stock:    payload.Stock,
	}, nil
}

func (r *CatalogRepository) Save(ctx context.Context, product *domain.Product) error {
	if product == nil || product.ID == "" {
		return fmt.Errorf("catalog repository: id is required")
	}

	payload, err := json.Marshal(productPayload{
		ID:       product.ID,
		Name:     product.Name,
		Category: string(product.Category),
		Price:    product.Price,
		Stock:    product.Stock,
	})
	if err != nil {
		return fmt.Errorf("catalog repository: encode: %w", err)
	}
	if err := r.client.Set(ctx, productKeyPrefix+product.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("catalog repository: set: %w", err)
	}
	return nil
}
