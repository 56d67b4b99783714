package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	wishlistSvc *services.WishlistService
	render      *render.Render
}

func NewWishlistHandler(wishlistSvc *services.WishlistService, r *render.Render) *WishlistHandler {
	return &WishlistHandler{
		wishlistSvc: wishlistSvc,
		render:      r,
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	games, err := h.wishlistSvc.List(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetWishlist: failed to load wishlist for user %s: %v", userID, err)
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Failed to load your wishlist."), http.StatusSeeOther)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "My Wishlist",
		"games": games,
	})
	_ = h.render.HTML(w, http.StatusOK, "wishlist", datas)
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	gameID := r.FormValue("game_id")

	if gameID == "" {
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Missing game."), http.StatusSeeOther)
		return
	}

	err := h.wishlistSvc.Add(r.Context(), userID, gameID)
	switch {
	case err == nil:
		http.Redirect(w, r, "/wishlist?status=success&message="+url.QueryEscape("Game added to your wishlist!"), http.StatusSeeOther)
	case errors.Is(err, services.ErrAlreadyInWishlist):
		// Double-submit: nothing changed, inform rather than fail.
		http.Redirect(w, r, "/wishlist?status=info&message="+url.QueryEscape("Game is already in your wishlist."), http.StatusSeeOther)
	case errors.Is(err, services.ErrGameNotFound):
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Game not found."), http.StatusSeeOther)
	default:
		logrus.Errorf("AddToWishlist: failed for user %s game %s: %v", userID, gameID, err)
		http.Redirect(w, r, "/wishlist?status=error&message="+url.QueryEscape("Failed to update wishlist."), http.StatusSeeOther)
	}
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	gameID := r.FormValue("game_id")

	err := h.wishlistSvc.Remove(r.Context(), userID, gameID)
	switch {
	case err == nil:
		http.Redirect(w, r, "/wishlist?status=success&message="+url.QueryEscape("Game removed from your wishlist."), http.StatusSeeOther)
	case errors.Is(err, services.ErrWishlistNotFound):
		http.Redirect(w, r, "/wishlist?status=error&message="+url.QueryEscape("Wishlist not found."), http.StatusSeeOther)
	default:
		logrus.Errorf("RemoveFromWishlist: failed for user %s game %s: %v", userID, gameID, err)
		http.Redirect(w, r, "/wishlist?status=error&message="+url.QueryEscape("Failed to update wishlist."), http.StatusSeeOther)
	}
}
