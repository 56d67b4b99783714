package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem records a game at the quantity and price it was bought for. Price
// is copied from the cart snapshot, so later catalog edits never change
// historical orders.
type OrderItem struct {
	ID       string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID  string          `gorm:"size:36;not null;uniqueIndex:idx_order_game"`
	Order    Order           `gorm:"foreignKey:OrderID;references:ID"`
	GameID   string          `gorm:"size:36;not null;uniqueIndex:idx_order_game"`
	Game     Game            `gorm:"foreignKey:GameID;references:ID"`
	GameName string          `gorm:"size:255;not null"`
	Qty      int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Subtotal decimal.Decimal `gorm:"type:decimal(16,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
