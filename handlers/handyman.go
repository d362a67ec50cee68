package handlers

import (
	"multiservice-api/models"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
)

func handymanServiceFilter(category string) store.Filter {
	return store.Eq("is_active", true).AndIf("category", category)
}

// ListHandymanServices returns active services, optionally by category
func (h *Handler) ListHandymanServices(c *gin.Context) {
	list(h, c, h.repo.HandymanServices, handymanServiceFilter(c.Query("category")), "services")
}

// CreateHandymanBooking records a booking; the slot is not reserved.
func (h *Handler) CreateHandymanBooking(c *gin.Context) {
	create(h, c, h.repo.HandymanBookings, models.NewHandymanBooking(), "Handyman booking", "booking_id")
}

// ListHandymanBookings returns handyman bookings, optionally by user and status
func (h *Handler) ListHandymanBookings(c *gin.Context) {
	list(h, c, h.repo.HandymanBookings, bookingFilter(c.Query("user_id"), c.Query("status")), "bookings")
}
