package handlers

import (
	"multiservice-api/models"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
)

// cabServiceFilter takes no query parameters.
func cabServiceFilter() store.Filter {
	return store.Eq("is_active", true)
}

// bookingFilter is shared by cab and handyman bookings.
func bookingFilter(userID, status string) store.Filter {
	return store.Filter{}.AndIf("user_id", userID).AndIf("status", status)
}

// ListCabServices returns active ride tiers
func (h *Handler) ListCabServices(c *gin.Context) {
	list(h, c, h.repo.CabServices, cabServiceFilter(), "services")
}

// CreateCabBooking records a ride request; no driver is matched.
func (h *Handler) CreateCabBooking(c *gin.Context) {
	create(h, c, h.repo.CabBookings, models.NewCabBooking(), "Cab booking", "booking_id")
}

// ListCabBookings returns cab bookings, optionally by user and status
func (h *Handler) ListCabBookings(c *gin.Context) {
	list(h, c, h.repo.CabBookings, bookingFilter(c.Query("user_id"), c.Query("status")), "bookings")
}
