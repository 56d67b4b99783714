package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusToBePacked  = "to be packed"
	OrderStatusToBeShipped = "to be shipped"
	OrderStatusShipped     = "shipped"
)

// statusRank orders the lifecycle; transitions may only move forward.
var statusRank = map[string]int{
	OrderStatusToBePacked:  1,
	OrderStatusToBeShipped: 2,
	OrderStatusShipped:     3,
}

func IsValidOrderStatus(status string) bool {
	_, ok := statusRank[status]
	return ok
}

// CanTransition reports whether an order may move from one status to the
// next. Backward moves and skipping a step are rejected.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}

type Order struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID      string `gorm:"size:36;index;not null"`
	User        User   `gorm:"foreignKey:UserID"`
	OrderNumber string `gorm:"size:8;not null;uniqueIndex"`

	OrderItems []OrderItem
	Total      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Status     string          `gorm:"size:20;not null;default:'to be packed'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
