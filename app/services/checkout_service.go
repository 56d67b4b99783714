package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type CheckoutService struct {
	db            *gorm.DB
	gameRepo      repositories.GameRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
}

func NewCheckoutService(
	db *gorm.DB,
	gameRepo repositories.GameRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		gameRepo:      gameRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// Place converts the session cart into a durable order. All-or-nothing:
// either a fully valid order with fully decremented stock exists after the
// call, or nothing changed. The caller clears the cart only on success.
func (s *CheckoutService) Place(ctx context.Context, userID string, cart *models.Cart) (*models.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Rolling back checkout transaction due to panic: %v", r)
			tx.Rollback()
			panic(r)
		}
		if !committed {
			tx.Rollback()
		}
	}()

	// Total uses the prices captured in the cart, not a live re-fetch.
	order := &models.Order{
		UserID: userID,
		Total:  cart.Total(),
		Status: models.OrderStatusToBePacked,
	}

	if err := s.createWithFreshNumber(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		// Re-check stock against the authoritative row, not against
		// anything cached earlier in the request.
		game, err := s.gameRepo.GetByID(ctx, line.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch game %s: %w", line.GameID, err)
		}
		if game == nil {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, line.Name)
		}

		ok, err := s.gameRepo.DecrementStock(ctx, tx, line.GameID, line.Qty)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", game.Name, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, game.Name)
		}

		orderItems = append(orderItems, models.OrderItem{
			OrderID:  order.ID,
			GameID:   line.GameID,
			GameName: line.Name,
			Qty:      line.Qty,
			Price:    line.Price,
			Subtotal: line.Price.Mul(decimalFromInt(line.Qty)),
		})
	}

	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}
	committed = true

	logrus.Infof("Order %s placed for user %s (%d items)", order.OrderNumber, userID, len(orderItems))
	return order, nil
}

// createWithFreshNumber assigns the order number exactly once, retrying a
// single time if the random token collides with an existing row.
func (s *CheckoutService) createWithFreshNumber(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	for attempt := 0; attempt < 2; attempt++ {
		number, err := helpers.GenerateOrderNumber()
		if err != nil {
			return err
		}
		order.OrderNumber = number

		err = s.orderRepo.Create(ctx, tx, order)
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) || attempt == 1 {
			return err
		}
		logrus.Warnf("Order number collision on %s, regenerating", number)
	}
	return nil
}

func decimalFromInt(i int) decimal.Decimal {
	return decimal.NewFromInt(int64(i))
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate")
}
