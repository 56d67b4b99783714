package repositories

import (
	"context"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"gorm.io/gorm"
)

type WishlistRepositoryImpl interface {
	FirstOrCreateByUserID(ctx context.Context, userID string) (*models.Wishlist, error)
	FindByUserID(ctx context.Context, userID string) (*models.Wishlist, error)
	GetWithGames(ctx context.Context, userID string) (*models.Wishlist, error)
	HasGame(ctx context.Context, wishlistID, gameID string) (bool, error)
	AddGame(ctx context.Context, wishlistID, gameID string) error
	RemoveGame(ctx context.Context, wishlistID, gameID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &wishlistRepository{db}
}

func (r *wishlistRepository) FirstOrCreateByUserID(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).
		Where(models.Wishlist{UserID: userID}).
		FirstOrCreate(&wishlist).Error
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) FindByUserID(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).First(&wishlist, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) GetWithGames(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Games").
		First(&wishlist, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) HasGame(ctx context.Context, wishlistID, gameID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistGame{}).
		Where("wishlist_id = ? AND game_id = ?", wishlistID, gameID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) AddGame(ctx context.Context, wishlistID, gameID string) error {
	return r.db.WithContext(ctx).Create(&models.WishlistGame{
		WishlistID: wishlistID,
		GameID:     gameID,
	}).Error
}

// RemoveGame deletes the association if present; removing an absent game is
// not an error.
func (r *wishlistRepository) RemoveGame(ctx context.Context, wishlistID, gameID string) error {
	return r.db.WithContext(ctx).
		Where("wishlist_id = ? AND game_id = ?", wishlistID, gameID).
		Delete(&models.WishlistGame{}).Error
}
