package services

import (
	"context"
	"testing"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWishlistService(db *gorm.DB) *WishlistService {
	return NewWishlistService(
		repositories.NewWishlistRepository(db),
		repositories.NewGameRepository(db),
	)
}

func TestWishlistAddCreatesListLazily(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Wanted Game", "9.99", 1)

	require.NoError(t, svc.Add(context.Background(), user.ID, game.ID))

	games, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, game.ID, games[0].ID)
}

func TestWishlistAddTwiceReportsAlreadyPresent(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Wanted Game", "9.99", 1)

	require.NoError(t, svc.Add(context.Background(), user.ID, game.ID))
	err := svc.Add(context.Background(), user.ID, game.ID)
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)

	var count int64
	require.NoError(t, db.Model(&models.WishlistGame{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWishlistAddUnknownGame(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)

	err := svc.Add(context.Background(), user.ID, "missing-id")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestWishlistRemove(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)
	game := createTestGame(t, db, "Wanted Game", "9.99", 1)

	require.NoError(t, svc.Add(context.Background(), user.ID, game.ID))
	require.NoError(t, svc.Remove(context.Background(), user.ID, game.ID))

	games, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, games)

	// Removing a game that is no longer a member is a no-op.
	require.NoError(t, svc.Remove(context.Background(), user.ID, game.ID))
}

func TestWishlistRemoveWithoutWishlist(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)

	err := svc.Remove(context.Background(), user.ID, "any-game")
	assert.ErrorIs(t, err, ErrWishlistNotFound)
}

func TestWishlistListWithoutWishlist(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)
	user := createTestUser(t, db)

	games, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, games)
}
