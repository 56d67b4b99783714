package handlers

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render    *render.Render
	orderRepo repositories.OrderRepository
}

func NewOrderHandler(render *render.Render, orderRepo repositories.OrderRepository) *OrderHandler {
	return &OrderHandler{
		render:    render,
		orderRepo: orderRepo,
	}
}

func (h *OrderHandler) OrderListGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	orders, err := h.orderRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		logrus.Errorf("OrderListGet: failed to load orders for user %s: %v", userID, err)
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Failed to load your orders."), http.StatusSeeOther)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "My Orders",
		"orders": orders,
	})
	_ = h.render.HTML(w, http.StatusOK, "order_list", datas)
}

func (h *OrderHandler) OrderDetailGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderNumber := vars["orderNumber"]

	order, err := h.orderRepo.FindByNumber(r.Context(), orderNumber)
	if err != nil {
		logrus.Errorf("OrderDetailGet: failed to load order %s: %v", orderNumber, err)
		http.Redirect(w, r, "/orders?status=error&message="+url.QueryEscape("Failed to load order."), http.StatusSeeOther)
		return
	}
	if order == nil {
		http.Redirect(w, r, "/orders?status=error&message="+url.QueryEscape("Order not found."), http.StatusSeeOther)
		return
	}

	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	if order.UserID != userID {
		http.Redirect(w, r, "/orders?status=error&message="+url.QueryEscape("You do not have access to this order."), http.StatusSeeOther)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Order #" + order.OrderNumber,
		"order": order,
	})
	_ = h.render.HTML(w, http.StatusOK, "order_detail", datas)
}
