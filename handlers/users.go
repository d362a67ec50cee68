package handlers

import (
	"net/http"

	"multiservice-api/models"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
)

// CreateUser registers a user. Emails are not checked for uniqueness.
func (h *Handler) CreateUser(c *gin.Context) {
	create(h, c, h.repo.Users, models.NewUser(), "User", "user_id")
}

// GetUser returns a single user by identifier.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.repo.Users.FindOne(c.Request.Context(), store.Eq("id", c.Param("id")))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.serverError(c, "Get user failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
