package service

import (
	"context"
	"fmt"
	"log"

	"vastburgers/internal/domain"
)

// CartService composes the pure cart mutators with the persistent store.
// Every mutation re-reads the stored cart, applies the change, then writes
// the whole value back. Returned carts are snapshots valid only until the
// next Read.
type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	return s.store.Read(ctx)
}

func (s *CartService) AddItem(ctx context.Context, item domain.CartItem) (domain.Cart, error) {
	cart, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	cart = domain.Add(cart, item)
	if err := s.store.Write(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	log.Printf("[storefront] added %q to cart (%d items)", item.Name, len(cart))
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, id int) (domain.Cart, error) {
	cart, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	cart = domain.Remove(cart, id)
	if err := s.store.Write(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	log.Printf("[storefront] removed item %d from cart (%d items)", id, len(cart))
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
