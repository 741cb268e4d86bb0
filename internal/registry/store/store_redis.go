package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"estagio-gateway/internal/registry"
)

// Redis key prefix for cached lookups.
const lookupKeyPrefix = "registry:cnpj:"

// Redis backs the cache with a shared store so multiple instances reuse
// lookups. The client lifecycle is managed externally.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed registry cache.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Save stores a lookup result with TTL expiry handled by Redis.
func (r *Redis) Save(ctx context.Context, cnpj string, result registry.LookupResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal lookup result: %w", err)
	}
	return r.client.Set(ctx, lookupKeyPrefix+cnpj, payload, r.ttl).Err()
}

// Find returns the cached result for a CNPJ, or ErrNotFound when the key is
// absent.
func (r *Redis) Find(ctx context.Context, cnpj string) (registry.LookupResult, error) {
	payload, err := r.client.Get(ctx, lookupKeyPrefix+cnpj).Bytes()
	if errors.Is(err, redis.Nil) {
		return registry.LookupResult{}, ErrNotFound
	}
	if err != nil {
		return registry.LookupResult{}, fmt.Errorf("registry cache get: %w", err)
	}
	var result registry.LookupResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return registry.LookupResult{}, fmt.Errorf("unmarshal lookup result: %w", err)
	}
	return result, nil
}
