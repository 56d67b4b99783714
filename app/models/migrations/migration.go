package migrations

import (
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Genre{},
		&models.Game{},
		&models.GameGenre{},
		&models.Order{},
		&models.OrderItem{},
		&models.Wishlist{},
		&models.WishlistGame{},
		&models.Review{},
	)
}
