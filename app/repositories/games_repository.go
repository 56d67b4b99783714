package repositories

import (
	"context"
	"strings"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"gorm.io/gorm"
)

type GameRepositoryImpl interface {
	GetGames(ctx context.Context) ([]models.Game, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Game, int64, error)
	GetByGenreSlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Game, int64, error)
	SearchGamesPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Game, int64, error)
	GetFeaturedGames(ctx context.Context, limit int) ([]models.Game, error)
	GetBySlug(ctx context.Context, slug string) (*models.Game, error)
	GetByID(ctx context.Context, id string) (*models.Game, error)
	IsSlugExists(ctx context.Context, slug string) (bool, error)
	CreateGame(ctx context.Context, game *models.Game) error
	UpdateGame(ctx context.Context, game *models.Game) error
	DecrementStock(ctx context.Context, tx *gorm.DB, gameID string, qty int) (bool, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepositoryImpl {
	return &gameRepository{db}
}

func (r *gameRepository) GetGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Model(&models.Game{}).Preload("Genres").Order("created_at DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Game{}).
		Where("status = ?", models.GameStatusActive).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("status = ?", models.GameStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error

	return games, total, err
}

func (r *gameRepository) GetByGenreSlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	err := r.db.WithContext(ctx).
		Joins("JOIN game_genres gg ON gg.game_id = games.id").
		Joins("JOIN genres g ON g.id = gg.genre_id").
		Where("g.slug = ? AND games.status = ?", slug, models.GameStatusActive).
		Model(&models.Game{}).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.WithContext(ctx).
		Joins("JOIN game_genres gg ON gg.game_id = games.id").
		Joins("JOIN genres g ON g.id = gg.genre_id").
		Where("g.slug = ? AND games.status = ?", slug, models.GameStatusActive).
		Preload("Genres").
		Order("games.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error

	return games, total, err
}

func (r *gameRepository) SearchGamesPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("LOWER(name) LIKE ? AND status = ?", searchKeyword, models.GameStatusActive).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("LOWER(name) LIKE ? AND status = ?", searchKeyword, models.GameStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error

	return games, total, err
}

func (r *gameRepository) GetFeaturedGames(ctx context.Context, limit int) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("status = ?", models.GameStatusActive).
		Order("rating DESC, created_at DESC").
		Limit(limit).
		Find(&games).Error
	return games, err
}

func (r *gameRepository) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("slug = ?", slug).
		First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("id = ?", id).
		First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) IsSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Game{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *gameRepository) CreateGame(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepository) UpdateGame(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

// DecrementStock subtracts qty inside the caller's transaction with a
// conditional update, so quantity can never go below zero even when two
// checkouts race on the same row. Returns false when stock was insufficient.
func (r *gameRepository) DecrementStock(ctx context.Context, tx *gorm.DB, gameID string, qty int) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ? AND quantity >= ?", gameID, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
