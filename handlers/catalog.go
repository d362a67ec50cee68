package handlers

import (
	"multiservice-api/models"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
)

// ── Stores ──────────────────────────────────────────────────────────────────

// storeFilter always hides inactive stores.
func storeFilter(category string) store.Filter {
	return store.Eq("is_active", true).AndIf("category", category)
}

// ListStores returns active stores, optionally by category
func (h *Handler) ListStores(c *gin.Context) {
	list(h, c, h.repo.Stores, storeFilter(c.Query("category")), "stores")
}

// CreateStore registers a vendor storefront. The vendor is not checked.
func (h *Handler) CreateStore(c *gin.Context) {
	create(h, c, h.repo.Stores, models.NewStore(), "Store", "store_id")
}

// ── Products ────────────────────────────────────────────────────────────────

// productFilter always hides unavailable products.
func productFilter(storeID, category string) store.Filter {
	return store.Eq("is_available", true).
		AndIf("store_id", storeID).
		AndIf("category", category)
}

// ListProducts returns available products, optionally by store and category
func (h *Handler) ListProducts(c *gin.Context) {
	list(h, c, h.repo.Products, productFilter(c.Query("store_id"), c.Query("category")), "products")
}

// CreateProduct adds a product to a store
func (h *Handler) CreateProduct(c *gin.Context) {
	create(h, c, h.repo.Products, models.NewProduct(), "Product", "product_id")
}
