package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GameFaker(db *gorm.DB, genres []models.Genre) *models.Game {
	name := faker.Word() + " " + faker.Word()
	rating := 1 + rand.Float64()*4

	picked := genres
	if len(genres) > 1 {
		picked = genres[:rand.Intn(len(genres))+1]
	}

	return &models.Game{
		ID:              uuid.New().String(),
		Name:            name,
		Slug:            slug.Make(name + "-" + uuid.NewString()[:6]),
		BackgroundImage: "/images/games/placeholder.jpg",
		Description:     faker.Paragraph(),
		Price:           decimal.NewFromFloat(fakePrice()),
		Quantity:        rand.Intn(20) + 1,
		Status:          models.GameStatusActive,
		Rating:          &rating,
		Genres:          picked,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func fakePrice() float64 {
	cents := rand.Intn(7000) + 499
	return float64(cents) / 100
}
