package handlers

import (
	"net/http"

	"multiservice-api/analytics"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the aggregate counters
func (h *Handler) Dashboard(c *gin.Context) {
	d, err := analytics.Compute(c.Request.Context(), h.repo)
	if err != nil {
		h.serverError(c, "Dashboard failed", err)
		return
	}
	c.JSON(http.StatusOK, d)
}
