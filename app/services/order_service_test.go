package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, db *gorm.DB, userID, status string) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		OrderNumber: uuid.NewString()[:8],
		Total:       decimal.RequireFromString("10.00"),
		Status:      status,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestOrderSetStatusForward(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(repositories.NewOrderRepository(db))
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID, models.OrderStatusToBePacked)

	require.NoError(t, svc.SetStatus(context.Background(), order.ID, models.OrderStatusToBeShipped))

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusToBeShipped, got.Status)

	require.NoError(t, svc.SetStatus(context.Background(), order.ID, models.OrderStatusShipped))

	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, got.Status)
}

func TestOrderSetStatusRejectsSkipsAndBackwardMoves(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(repositories.NewOrderRepository(db))
	user := createTestUser(t, db)

	packed := createTestOrder(t, db, user.ID, models.OrderStatusToBePacked)
	err := svc.SetStatus(context.Background(), packed.ID, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	shipped := createTestOrder(t, db, user.ID, models.OrderStatusShipped)
	err = svc.SetStatus(context.Background(), shipped.ID, models.OrderStatusToBeShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Rejected writes leave the row alone.
	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", packed.ID).Error)
	assert.Equal(t, models.OrderStatusToBePacked, got.Status)
}

func TestOrderSetStatusUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(repositories.NewOrderRepository(db))
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID, models.OrderStatusToBePacked)

	err := svc.SetStatus(context.Background(), order.ID, "cancelled")
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
}

func TestOrderSetStatusUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(repositories.NewOrderRepository(db))

	err := svc.SetStatus(context.Background(), "missing", models.OrderStatusToBeShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
