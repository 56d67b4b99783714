package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repositories.NewGameRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
	)
}

func cartWith(lines ...models.CartLine) *models.Cart {
	cart := models.NewCart()
	for _, l := range lines {
		cart.Add(l)
	}
	return cart
}

func gameQuantity(t *testing.T, db *gorm.DB, gameID string) int {
	t.Helper()
	var game models.Game
	require.NoError(t, db.First(&game, "id = ?", gameID).Error)
	return game.Quantity
}

func TestCheckoutPlacesOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Chrono Saga", "19.99", 5)

	cart := cartWith(models.CartLine{
		GameID: game.ID,
		Name:   game.Name,
		Price:  game.Price,
		Qty:    2,
	})

	order, err := svc.Place(context.Background(), user.ID, cart)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("39.98")), "got %s", order.Total)
	assert.Equal(t, models.OrderStatusToBePacked, order.Status)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), order.OrderNumber)

	assert.Equal(t, 3, gameQuantity(t, db, game.ID))

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, game.ID, items[0].GameID)
	assert.Equal(t, 2, items[0].Qty)
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("39.98")))
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)

	_, err := svc.Place(context.Background(), user.ID, models.NewCart())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.Place(context.Background(), user.ID, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Rare Drop", "9.99", 1)

	cart := cartWith(models.CartLine{
		GameID: game.ID,
		Name:   game.Name,
		Price:  game.Price,
		Qty:    2,
	})

	_, err := svc.Place(context.Background(), user.ID, cart)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), game.Name)

	// Nothing was written and stock is untouched.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
	assert.Equal(t, 1, gameQuantity(t, db, game.ID))
}

func TestCheckoutPartialFailureRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)
	plenty := createTestGame(t, db, "Common Game", "5.00", 10)
	scarce := createTestGame(t, db, "Scarce Game", "50.00", 1)

	cart := cartWith(
		models.CartLine{GameID: plenty.ID, Name: plenty.Name, Price: plenty.Price, Qty: 3},
		models.CartLine{GameID: scarce.ID, Name: scarce.Name, Price: scarce.Price, Qty: 5},
	)

	_, err := svc.Place(context.Background(), user.ID, cart)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The line that could have been decremented was rolled back too.
	assert.Equal(t, 10, gameQuantity(t, db, plenty.ID))
	assert.Equal(t, 1, gameQuantity(t, db, scarce.ID))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCheckoutLastCopyGoesToFirstBuyer(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	first := createTestUser(t, db)
	second := createTestUser(t, db)
	game := createTestGame(t, db, "Last Copy", "29.99", 1)

	buy := func() *models.Cart {
		return cartWith(models.CartLine{GameID: game.ID, Name: game.Name, Price: game.Price, Qty: 1})
	}

	order, err := svc.Place(context.Background(), first.ID, buy())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 0, gameQuantity(t, db, game.ID))

	_, err = svc.Place(context.Background(), second.ID, buy())
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, gameQuantity(t, db, game.ID))
}

func TestCheckoutVanishedGame(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)

	// A line whose game no longer exists in the catalog.
	cart := cartWith(models.CartLine{
		GameID: "00000000-0000-0000-0000-000000000000",
		Name:   "Ghost Game",
		Price:  decimal.RequireFromString("1.00"),
		Qty:    1,
	})

	_, err := svc.Place(context.Background(), user.ID, cart)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCheckoutChargesSnapshotPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Sale Game", "10.00", 5)

	cart := cartWith(models.CartLine{
		GameID: game.ID,
		Name:   game.Name,
		Price:  game.Price,
		Qty:    1,
	})

	// Price goes up between add-to-cart and checkout.
	require.NoError(t, db.Model(&models.Game{}).Where("id = ?", game.ID).
		Update("price", decimal.RequireFromString("25.00")).Error)

	order, err := svc.Place(context.Background(), user.ID, cart)
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("10.00")), "got %s", order.Total)
}
