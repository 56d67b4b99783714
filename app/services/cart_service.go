package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
)

var ErrGameNotFound = errors.New("game not found")

// CartService mutates the explicit per-session cart object handed in by the
// handler. Nothing here touches durable storage except the catalog read on
// add; the handler is responsible for saving the cart back to the session.
type CartService struct {
	gameRepo repositories.GameRepositoryImpl
}

func NewCartService(gameRepo repositories.GameRepositoryImpl) *CartService {
	return &CartService{gameRepo: gameRepo}
}

// AddItem inserts a line with a snapshot of the game's current price, or
// increments the existing line. Requested quantity is deliberately not
// checked against stock here; checkout is the only stock gate. Returns the
// game's name for UI feedback.
func (s *CartService) AddItem(ctx context.Context, cart *models.Cart, gameID string, qty int) (string, error) {
	if qty < 1 {
		qty = 1
	}

	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch game %s: %w", gameID, err)
	}
	if game == nil {
		return "", ErrGameNotFound
	}

	cart.Add(models.CartLine{
		GameID: game.ID,
		Name:   game.Name,
		Slug:   game.Slug,
		Image:  game.BackgroundImage,
		Price:  game.Price,
		Qty:    qty,
	})

	return game.Name, nil
}

// UpdateItem sets the quantity of an existing line; absent lines are a
// no-op. Stock validation is deferred to checkout.
func (s *CartService) UpdateItem(cart *models.Cart, gameID string, qty int) {
	cart.Update(gameID, qty)
}

// RemoveItem deletes the line; removing an absent line is not an error.
func (s *CartService) RemoveItem(cart *models.Cart, gameID string) {
	cart.Remove(gameID)
}

func (s *CartService) Clear(cart *models.Cart) {
	cart.Clear()
}
