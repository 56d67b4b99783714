package models

import (
	"time"

	"gorm.io/gorm"
)

type Genre struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Slug      string `gorm:"size:100;not null;uniqueIndex"`
	Games     []Game `gorm:"many2many:game_genres;"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
