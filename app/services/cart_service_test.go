package services

import (
	"context"
	"testing"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceAddItemSnapshotsGame(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(repositories.NewGameRepository(db))
	game := createTestGame(t, db, "Pixel Quest", "14.99", 3)

	cart := models.NewCart()
	name, err := svc.AddItem(context.Background(), cart, game.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Pixel Quest", name)

	line := cart.Lines[game.ID]
	assert.Equal(t, game.ID, line.GameID)
	assert.Equal(t, 2, line.Qty)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("14.99")))
}

func TestCartServiceAddItemUnknownGame(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(repositories.NewGameRepository(db))

	cart := models.NewCart()
	_, err := svc.AddItem(context.Background(), cart, "missing-id", 1)
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.True(t, cart.IsEmpty())
}

func TestCartServiceAddItemCoercesQty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(repositories.NewGameRepository(db))
	game := createTestGame(t, db, "Tiny Game", "1.00", 3)

	cart := models.NewCart()
	_, err := svc.AddItem(context.Background(), cart, game.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[game.ID].Qty)
}

func TestCartServiceAddItemIgnoresStock(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(repositories.NewGameRepository(db))
	game := createTestGame(t, db, "Scarce Game", "9.99", 1)

	// Adding more than the stock is allowed; checkout enforces stock.
	cart := models.NewCart()
	_, err := svc.AddItem(context.Background(), cart, game.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, cart.Lines[game.ID].Qty)
}

func TestCartServicePriceSnapshotSurvivesRepricing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(repositories.NewGameRepository(db))
	game := createTestGame(t, db, "Sale Game", "20.00", 5)

	cart := models.NewCart()
	_, err := svc.AddItem(context.Background(), cart, game.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Game{}).Where("id = ?", game.ID).
		Update("price", decimal.RequireFromString("40.00")).Error)

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("20.00")), "got %s", cart.Total())
}
