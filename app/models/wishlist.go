package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist is created lazily, one row per user.
type Wishlist struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;not null;uniqueIndex"`
	User      User   `gorm:"foreignKey:UserID"`
	Games     []Game `gorm:"many2many:wishlist_games;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}

type WishlistGame struct {
	WishlistID string `gorm:"size:36;primaryKey"`
	GameID     string `gorm:"size:36;primaryKey"`
	CreatedAt  time.Time
}
