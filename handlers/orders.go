package handlers

import (
	"multiservice-api/models"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
)

// orderFilter has no implicit clause: every order is visible.
func orderFilter(userID, status string) store.Filter {
	return store.Filter{}.AndIf("user_id", userID).AndIf("status", status)
}

// PlaceOrder stores an order as sent. Items, totals and the referenced store
// are not checked.
func (h *Handler) PlaceOrder(c *gin.Context) {
	create(h, c, h.repo.Orders, models.NewOrder(), "Order", "order_id")
}

// ListOrders returns orders, optionally by user and status
func (h *Handler) ListOrders(c *gin.Context) {
	list(h, c, h.repo.Orders, orderFilter(c.Query("user_id"), c.Query("status")), "orders")
}
