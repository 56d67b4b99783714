package repositories

import (
	"context"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"gorm.io/gorm"
)

type GenreRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id string) (*models.Genre, error)
	GetBySlug(ctx context.Context, slug string) (*models.Genre, error)
	Create(ctx context.Context, genre *models.Genre) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepositoryImpl {
	return &genreRepository{db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) GetBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}
