package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/models/migrations"
	"github.com/shopspring/decimal"
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

func createTestGame(t *testing.T, db *gorm.DB, name, price string, quantity int) *models.Game {
	t.Helper()

	game := &models.Game{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     uuid.NewString()[:8],
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		Status:   models.GameStatusActive,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Test",
		LastName:  "User",
		Email:     uuid.NewString()[:8] + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
