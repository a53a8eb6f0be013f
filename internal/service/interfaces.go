package service

import (
	"context"

	"vastburgers/internal/domain"
)

type CartStore interface {
	Read(ctx context.Context) (domain.Cart, error)
	Write(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context) error
}

type OrderAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type StatusSimulator interface {
	Current() domain.OrderStatus
	Restart()
}

type CartServiceInterface interface {
	Get(ctx context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, item domain.CartItem) (domain.Cart, error)
	RemoveItem(ctx context.Context, id int) (domain.Cart, error)
	Clear(ctx context.Context) error
}

type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context) (*domain.Order, error)
}

type HistoryServiceInterface interface {
	History(ctx context.Context) (*domain.OrderHistory, error)
}

var _ CartServiceInterface = (*CartService)(nil)
var _ CheckoutServiceInterface = (*CheckoutService)(nil)
var _ HistoryServiceInterface = (*HistoryService)(nil)
var _ StatusSimulator = (*StatusTracker)(nil)
