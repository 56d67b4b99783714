package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	cartStore   sessions.CartStore
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, cartStore sessions.CartStore) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc: checkoutSvc,
		cartStore:   cartStore,
	}
}

// Checkout places the order and clears the cart only after the transaction
// committed. Business failures come back as retryable flash messages with
// no partial effects.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
	if !ok || userID == "" {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must log in to check out."), http.StatusSeeOther)
		return
	}

	cart := h.cartStore.Get(r)

	order, err := h.checkoutSvc.Place(r.Context(), userID, cart)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Your cart is empty."), http.StatusSeeOther)
		case errors.Is(err, services.ErrInsufficientStock):
			http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		default:
			logrus.Errorf("Checkout: failed to place order for user %s: %v", userID, err)
			http.Redirect(w, r, "/carts?status=error&message="+url.QueryEscape("Failed to create order. Please try again."), http.StatusSeeOther)
		}
		return
	}

	cart.Clear()
	if err := h.cartStore.Save(w, r, cart); err != nil {
		logrus.Errorf("Checkout: order %s placed but failed to clear cart session: %v", order.OrderNumber, err)
	}

	http.Redirect(w, r, "/orders/"+order.OrderNumber+"?status=success&message="+url.QueryEscape("Order placed!"), http.StatusSeeOther)
}
