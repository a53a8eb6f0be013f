package tests

import (
	"context"
	"errors"
	"testing"

	"vastburgers/internal/domain"
	"vastburgers/internal/mocks"
	"vastburgers/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestHistoryService_FlattensOrdersAndSumsTotals(t *testing.T) {
	orders := mocks.NewOrderAPI(t)
	status := mocks.NewStatusSimulator(t)
	svc := service.NewHistoryService(orders, status)
	ctx := context.Background()

	itemA := domain.CartItem{ID: 1, Name: "Classic", Price: "5.00"}
	itemB := domain.CartItem{ID: 2, Name: "Cola", Price: "2.50"}
	itemC := domain.CartItem{ID: 3, Name: "Veggie", Price: "10.00"}

	status.On("Current").Return(domain.StatusShipped).Once()
	orders.On("ListOrders", ctx).Return([]domain.Order{
		{ID: 1, Cart: domain.Cart{itemA, itemB}, TotalPrice: 7.5},
		{ID: 2, Cart: domain.Cart{itemC}, TotalPrice: 10},
	}, nil).Once()

	history, err := svc.History(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.Cart{itemA, itemB, itemC}, history.Items)
	assert.InDelta(t, 17.5, history.TotalPrice, 0.0001)
	assert.Equal(t, domain.StatusShipped, history.Status)
}

func TestHistoryService_FetchFailureFallsBackToEmptyList(t *testing.T) {
	orders := mocks.NewOrderAPI(t)
	status := mocks.NewStatusSimulator(t)
	svc := service.NewHistoryService(orders, status)
	ctx := context.Background()

	status.On("Current").Return(domain.StatusReceived).Once()
	orders.On("ListOrders", ctx).
		Return(nil, errors.New("order service unreachable")).Once()

	history, err := svc.History(ctx)
	assert.Error(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history.Items)
	assert.Zero(t, history.TotalPrice)
}

func TestHistoryService_NoOrdersYet(t *testing.T) {
	orders := mocks.NewOrderAPI(t)
	status := mocks.NewStatusSimulator(t)
	svc := service.NewHistoryService(orders, status)
	ctx := context.Background()

	status.On("Current").Return(domain.StatusReceived).Once()
	orders.On("ListOrders", ctx).Return([]domain.Order{}, nil).Once()

	history, err := svc.History(ctx)
	assert.NoError(t, err)
	assert.Empty(t, history.Items)
	assert.Zero(t, history.TotalPrice)
}
