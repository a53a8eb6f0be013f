package service

import (
	"context"
	"fmt"

	"vastburgers/internal/domain"
)

// HistoryService derives the order history view: every submitted order's
// cart flattened into one list, grand total summed from the stored order
// totals.
type HistoryService struct {
	orders OrderAPI
	status StatusSimulator
}

func NewHistoryService(orders OrderAPI, status StatusSimulator) *HistoryService {
	return &HistoryService{orders: orders, status: status}
}

func (s *HistoryService) History(ctx context.Context) (*domain.OrderHistory, error) {
	history := &domain.OrderHistory{Items: domain.Cart{}}
	if s.status != nil {
		history.Status = s.status.Current()
	}

	records, err := s.orders.ListOrders(ctx)
	if err != nil {
		// The view falls back to an empty list; the error is surfaced as
		// a notification, never a crash.
		return history, fmt.Errorf("failed to load order history: %w", err)
	}

	for _, order := range records {
		history.Items = append(history.Items, order.Cart...)
		history.TotalPrice += order.TotalPrice
	}
	return history, nil
}
