package storage

import (
	"context"
	"encoding/json"
	"log"

	"vastburgers/internal/domain"

	"github.com/redis/go-redis/v9"
)

// CartKey is the single durable slot holding the serialized cart. It is
// the only local state the storefront keeps.
const CartKey = "cartItems"

// RedisCartStore persists the whole cart under CartKey with no TTL.
// Writes are whole-value replacements: two screens mutating concurrently
// resolve as last-write-wins, and a screen only observes foreign writes on
// its next Read. There is no merge and no change notification.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

// Read returns the stored cart. A missing key is an empty cart, and so is
// a corrupted value: a cart that fails to decode is logged and dropped
// rather than surfaced as an error.
func (s *RedisCartStore) Read(ctx context.Context) (domain.Cart, error) {
	raw, err := s.Client.Get(ctx, CartKey).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Printf("[storefront] discarding malformed stored cart: %v", err)
		return domain.Cart{}, nil
	}
	return cart, nil
}

// Write replaces the stored cart with the given value.
func (s *RedisCartStore) Write(ctx context.Context, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, CartKey, payload, 0).Err()
}

// Clear removes the stored cart entirely.
func (s *RedisCartStore) Clear(ctx context.Context) error {
	return s.Client.Del(ctx, CartKey).Err()
}
