package admin

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/sirupsen/logrus"
)

func (h *AdminHandler) GetOrdersPage(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAllOrders(r.Context())
	if err != nil {
		logrus.Errorf("GetOrdersPage: failed to load orders: %v", err)
		http.Redirect(w, r, "/admin/dashboard?status=error&message="+url.QueryEscape("Failed to load orders."), http.StatusSeeOther)
		return
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":  "Order Management",
		"orders": orders,
		"statusOptions": []string{
			models.OrderStatusToBePacked,
			models.OrderStatusToBeShipped,
			models.OrderStatusShipped,
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/orders/index", datas)
}

// UpdateOrderStatusPost moves an order one step along the fulfilment chain.
// Skipping steps or moving backwards is rejected.
func (h *AdminHandler) UpdateOrderStatusPost(w http.ResponseWriter, r *http.Request) {
	orderID := r.FormValue("order_id")
	newStatus := r.FormValue("new_status")

	if orderID == "" || newStatus == "" {
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Order and status are required."), http.StatusSeeOther)
		return
	}

	err := h.orderSvc.SetStatus(r.Context(), orderID, newStatus)
	switch {
	case err == nil:
		http.Redirect(w, r, "/admin/orders?status=success&message="+url.QueryEscape("Order status updated."), http.StatusSeeOther)
	case errors.Is(err, services.ErrOrderNotFound):
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Order not found."), http.StatusSeeOther)
	case errors.Is(err, services.ErrUnknownOrderStatus):
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Unknown order status."), http.StatusSeeOther)
	case errors.Is(err, services.ErrInvalidTransition):
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("That status change is not allowed."), http.StatusSeeOther)
	default:
		logrus.Errorf("UpdateOrderStatusPost: failed to update order %s: %v", orderID, err)
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Failed to update order status."), http.StatusSeeOther)
	}
}
