package fakers

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  helpers.HashPassword("password123"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func AdminFaker(db *gorm.DB) *models.Admin {
	return &models.Admin{
		ID:        uuid.New().String(),
		Name:      "Store Admin",
		Email:     "admin@gamestore.local",
		Password:  helpers.HashPassword("admin123"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
