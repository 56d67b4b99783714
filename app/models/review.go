package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReviewMaxLength = 500
	ReviewMinRating = 1
	ReviewMaxRating = 5
)

// Review is soft-deleted through DeletedAt so moderators can restore it.
// Physical removal only happens through the explicit force-delete path.
type Review struct {
	ID     string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID string  `gorm:"size:36;index;not null"`
	User   User    `gorm:"foreignKey:UserID"`
	Review string  `gorm:"size:500;not null"`
	Rating int     `gorm:"not null"`
	Image  *string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (r *Review) IsDeleted() bool {
	return r.DeletedAt.Valid
}
