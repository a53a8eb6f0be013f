package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"vastburgers/internal/domain"
)

// CheckoutService finalizes the cart into an order against the remote
// order service.
type CheckoutService struct {
	store     CartStore
	orders    OrderAPI
	publisher OrderPublisher
	status    StatusSimulator
}

func NewCheckoutService(store CartStore, orders OrderAPI, publisher OrderPublisher, status StatusSimulator) *CheckoutService {
	return &CheckoutService{
		store:     store,
		orders:    orders,
		publisher: publisher,
		status:    status,
	}
}

// PlaceOrder submits the current cart and its derived total. The stored
// cart is cleared only after the remote service has confirmed the order;
// on any failure it is left untouched so the shopper can retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	cart, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	order := domain.Order{
		Cart:       cart,
		TotalPrice: domain.TotalPrice(cart),
		Date:       time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		// The order is already recorded remotely; a stale cart beats
		// losing the submission.
		log.Printf("[storefront] warning: failed to clear cart after order: %v", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:       "order_placed",
			OrderID:    created.ID,
			TotalPrice: created.TotalPrice,
			ItemCount:  len(created.Cart),
			Timestamp:  time.Now(),
		})
	}

	if s.status != nil {
		s.status.Restart()
	}

	log.Printf("[storefront] placed order %d (%d items, total %.2f)", created.ID, len(created.Cart), created.TotalPrice)
	return created, nil
}
