package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/models/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	return db
}

func seedGame(t *testing.T, db *gorm.DB, name, gameSlug string, quantity, status int) *models.Game {
	t.Helper()

	game := &models.Game{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     gameSlug,
		Price:    decimal.RequireFromString("9.99"),
		Quantity: quantity,
		Status:   status,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func TestDecrementStockBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	game := seedGame(t, db, "Boundary Game", "boundary-game", 3, models.GameStatusActive)

	ok, err := repo.DecrementStock(context.Background(), db, game.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	var got models.Game
	require.NoError(t, db.First(&got, "id = ?", game.ID).Error)
	assert.Equal(t, 0, got.Quantity)

	// Stock is exhausted, the conditional update must not fire.
	ok, err = repo.DecrementStock(context.Background(), db, game.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.First(&got, "id = ?", game.ID).Error)
	assert.Equal(t, 0, got.Quantity)
}

func TestDecrementStockMoreThanAvailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	game := seedGame(t, db, "Scarce Game", "scarce-game", 2, models.GameStatusActive)

	ok, err := repo.DecrementStock(context.Background(), db, game.ID, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	var got models.Game
	require.NoError(t, db.First(&got, "id = ?", game.ID).Error)
	assert.Equal(t, 2, got.Quantity)
}

func TestGetPaginatedHidesInactiveGames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGame(t, db, "Visible", "visible", 1, models.GameStatusActive)
	seedGame(t, db, "Hidden", "hidden", 1, models.GameStatusInactive)

	games, total, err := repo.GetPaginated(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, games, 1)
	assert.Equal(t, "Visible", games[0].Name)
}

func TestSearchGamesPaginatedIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGame(t, db, "Chrono Saga", "chrono-saga", 1, models.GameStatusActive)
	seedGame(t, db, "Other Game", "other-game", 1, models.GameStatusActive)

	games, total, err := repo.SearchGamesPaginated(context.Background(), "CHRONO", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, games, 1)
	assert.Equal(t, "Chrono Saga", games[0].Name)
}

func TestSearchGamesPaginatedSkipsInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGame(t, db, "Retired Game", "retired-game", 1, models.GameStatusInactive)

	games, total, err := repo.SearchGamesPaginated(context.Background(), "retired", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, games)
}

func TestGetByGenreSlugPaginated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)

	rpg := models.Genre{ID: uuid.New().String(), Name: "RPG", Slug: "rpg"}
	require.NoError(t, db.Create(&rpg).Error)

	inGenre := seedGame(t, db, "Dragon Tale", "dragon-tale", 1, models.GameStatusActive)
	require.NoError(t, db.Model(inGenre).Association("Genres").Append(&rpg))
	seedGame(t, db, "Puzzle Box", "puzzle-box", 1, models.GameStatusActive)

	games, total, err := repo.GetByGenreSlugPaginated(context.Background(), "rpg", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, games, 1)
	assert.Equal(t, "Dragon Tale", games[0].Name)
}

func TestGetBySlugNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)

	game, err := repo.GetBySlug(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestIsSlugExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGame(t, db, "Taken", "taken", 1, models.GameStatusActive)

	exists, err := repo.IsSlugExists(context.Background(), "taken")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.IsSlugExists(context.Background(), "free")
	require.NoError(t, err)
	assert.False(t, exists)
}
