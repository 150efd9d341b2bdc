// Package redis provides go-redis backed implementations of the entity
// repositories, for deployments where the durable key-value store is an
// external Redis rather than process memory. Entities are stored as JSON
// values under typed key prefixes.
package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix = "product:"
	basketKeyPrefix  = "basket:user:"
	dealKeyPrefix    = "deal:product:"
)

// NewClient builds a configured go-redis client. Callers should Ping it
// before wiring repositories on top.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping verifies connectivity.
func Ping(ctx context.Context, client *goredis.Client) error {
	return client.Ping(ctx).Err()
}
