package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrUnknownOrderStatus = errors.New("unknown order status")
)

type OrderService struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// SetStatus moves an order along its lifecycle. Only the next forward step
// is accepted; backward writes and step-skipping are rejected.
func (s *OrderService) SetStatus(ctx context.Context, orderID, newStatus string) error {
	if !models.IsValidOrderStatus(newStatus) {
		return ErrUnknownOrderStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if !models.CanTransition(order.Status, newStatus) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, order.Status, newStatus)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, newStatus)
}
