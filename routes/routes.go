package routes

import (
	"multiservice-api/handlers"
	"multiservice-api/identity"
	"multiservice-api/metrics"
	"multiservice-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers probes, the public API and the bearer-protected API.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, verifier identity.Verifier, m *metrics.HTTPMetrics) {
	r.GET("/health", handlers.Health)
	r.GET("/", handlers.Welcome)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/health", handlers.Health)
		public.GET("/statuses", handlers.GetStatuses)

		// Users
		public.POST("/users", h.CreateUser)
		public.GET("/users/:id", h.GetUser)

		// Catalog
		public.GET("/stores", h.ListStores)
		public.GET("/products", h.ListProducts)
		public.GET("/cab-services", h.ListCabServices)
		public.GET("/handyman-services", h.ListHandymanServices)

		// Orders & bookings
		public.GET("/orders", h.ListOrders)
		public.GET("/cab-bookings", h.ListCabBookings)
		public.GET("/handyman-bookings", h.ListHandymanBookings)
	}

	// ── Bearer routes ──────────────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.BearerRequired(verifier))
	{
		auth.POST("/stores", h.CreateStore)
		auth.POST("/products", h.CreateProduct)
		auth.POST("/orders", h.PlaceOrder)
		auth.POST("/cab-bookings", h.CreateCabBooking)
		auth.POST("/handyman-bookings", h.CreateHandymanBooking)
		auth.GET("/analytics/dashboard", h.Dashboard)
	}
}
