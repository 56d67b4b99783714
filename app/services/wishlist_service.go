package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
)

var (
	// ErrAlreadyInWishlist is informational: the UI shows it as a notice,
	// not a failure, and nothing was mutated.
	ErrAlreadyInWishlist = errors.New("game already in wishlist")
	ErrWishlistNotFound  = errors.New("wishlist not found")
)

type WishlistService struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	gameRepo     repositories.GameRepositoryImpl
}

func NewWishlistService(wishlistRepo repositories.WishlistRepositoryImpl, gameRepo repositories.GameRepositoryImpl) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		gameRepo:     gameRepo,
	}
}

// Add bookmarks a game, lazily creating the user's wishlist row. Safe
// against double-submits: a repeated add reports ErrAlreadyInWishlist
// without creating a duplicate association.
func (s *WishlistService) Add(ctx context.Context, userID, gameID string) error {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to fetch game %s: %w", gameID, err)
	}
	if game == nil {
		return ErrGameNotFound
	}

	wishlist, err := s.wishlistRepo.FirstOrCreateByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get or create wishlist: %w", err)
	}

	exists, err := s.wishlistRepo.HasGame(ctx, wishlist.ID, gameID)
	if err != nil {
		return fmt.Errorf("failed to check wishlist membership: %w", err)
	}
	if exists {
		return ErrAlreadyInWishlist
	}

	return s.wishlistRepo.AddGame(ctx, wishlist.ID, gameID)
}

// Remove drops a game from the user's wishlist. Removing a game that is not
// a member is a no-op; a user without any wishlist row gets
// ErrWishlistNotFound.
func (s *WishlistService) Remove(ctx context.Context, userID, gameID string) error {
	wishlist, err := s.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	if wishlist == nil {
		return ErrWishlistNotFound
	}

	return s.wishlistRepo.RemoveGame(ctx, wishlist.ID, gameID)
}

// List returns the games on the user's wishlist; a user without a wishlist
// simply has an empty list.
func (s *WishlistService) List(ctx context.Context, userID string) ([]models.Game, error) {
	wishlist, err := s.wishlistRepo.GetWithGames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	if wishlist == nil {
		return []models.Game{}, nil
	}
	return wishlist.Games, nil
}
