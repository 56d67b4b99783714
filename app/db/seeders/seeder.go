package seeders

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/prasetiyohadi/go-gamestore/app/db/fakers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var genreNames = []string{
	"Action",
	"Adventure",
	"RPG",
	"Strategy",
	"Simulation",
	"Sports",
	"Puzzle",
	"Indie",
}

const gamesToSeed = 24

// DBSeed fills an empty database with demo genres, games, customers and one
// admin account. Seeding twice is safe: genres and the admin are looked up
// first, games get random unique slugs.
func DBSeed(db *gorm.DB) error {
	genres := make([]models.Genre, 0, len(genreNames))
	for _, name := range genreNames {
		genre := models.Genre{
			ID:   uuid.New().String(),
			Name: name,
			Slug: slug.Make(name),
		}
		if err := db.FirstOrCreate(&genre, models.Genre{Name: name}).Error; err != nil {
			return err
		}
		genres = append(genres, genre)
	}

	for i := 0; i < gamesToSeed; i++ {
		game := fakers.GameFaker(db, genres)
		if err := db.Create(game).Error; err != nil {
			return err
		}
	}

	for i := 0; i < 5; i++ {
		user := fakers.UserFaker(db)
		if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
			return err
		}
	}

	admin := fakers.AdminFaker(db)
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	logrus.Infof("✅ Seeded %d genres, %d games, demo users and the admin account", len(genres), gamesToSeed)
	return nil
}
