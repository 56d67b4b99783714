package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc   *services.CartService
	cartStore sessions.CartStore
	render    *render.Render
}

func NewCartHandler(cartSvc *services.CartService, cartStore sessions.CartStore, r *render.Render) *CartHandler {
	return &CartHandler{
		cartSvc:   cartSvc,
		cartStore: cartStore,
		render:    r,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore.Get(r)

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Shopping Cart",
		"cart":  cart,
		"total": cart.Total(),
	})
	_ = h.render.HTML(w, http.StatusOK, "cart", datas)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	gameID := r.FormValue("game_id")
	qtyStr := r.FormValue("qty")
	if qtyStr == "" {
		qtyStr = "1"
	}

	if gameID == "" {
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Missing game."), http.StatusSeeOther)
		return
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Quantity must be at least 1."), http.StatusSeeOther)
		return
	}

	cart := h.cartStore.Get(r)
	name, err := h.cartSvc.AddItem(r.Context(), cart, gameID, qty)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Game not found."), http.StatusSeeOther)
			return
		}
		logrus.Errorf("AddItem: failed to add game %s to cart: %v", gameID, err)
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Failed to add game to cart."), http.StatusSeeOther)
		return
	}

	if err := h.cartStore.Save(w, r, cart); err != nil {
		logrus.Errorf("AddItem: failed to save cart session: %v", err)
		http.Redirect(w, r, "/games?status=error&message="+url.QueryEscape("Failed to save cart."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/carts?status=success&message="+url.QueryEscape(fmt.Sprintf("%s added to your cart!", name)), http.StatusSeeOther)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	gameID := r.FormValue("game_id")
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil || qty <= 0 {
		http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Quantity must be at least 1."), http.StatusSeeOther)
		return
	}

	cart := h.cartStore.Get(r)
	h.cartSvc.UpdateItem(cart, gameID, qty)

	if err := h.cartStore.Save(w, r, cart); err != nil {
		logrus.Errorf("UpdateItem: failed to save cart session: %v", err)
		http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Failed to save cart."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/carts?status=success&message="+url.QueryEscape("Cart updated."), http.StatusSeeOther)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	gameID := r.FormValue("game_id")

	cart := h.cartStore.Get(r)
	h.cartSvc.RemoveItem(cart, gameID)

	if err := h.cartStore.Save(w, r, cart); err != nil {
		logrus.Errorf("RemoveItem: failed to save cart session: %v", err)
		http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Failed to save cart."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/carts?status=success&message="+url.QueryEscape("Item removed from cart."), http.StatusSeeOther)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore.Get(r)
	h.cartSvc.Clear(cart)

	if err := h.cartStore.Save(w, r, cart); err != nil {
		logrus.Errorf("ClearCart: failed to save cart session: %v", err)
		http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Failed to save cart."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/carts?status=success&message="+url.QueryEscape("Cart cleared."), http.StatusSeeOther)
}
