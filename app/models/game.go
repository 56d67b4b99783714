package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	GameStatusInactive = 0
	GameStatusActive   = 1
)

type Game struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name            string          `gorm:"size:255;not null"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex"`
	BackgroundImage string          `gorm:"size:255"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Quantity        int             `gorm:"not null"`
	Status          int             `gorm:"default:1"`
	Rating          *float64        `gorm:"type:decimal(3,2)"`
	Genres          []Genre         `gorm:"many2many:game_genres;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

type GameGenre struct {
	GameID    string `gorm:"size:36;primaryKey"`
	GenreID   string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Game) IsActive() bool {
	return g.Status == GameStatusActive
}

// StatusLabel maps the stored enum onto the value exposed by forms.
func (g *Game) StatusLabel() string {
	if g.Status == GameStatusActive {
		return "active"
	}
	return "inactive"
}
