// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
	"github.com/hfashion/storefront/internal/pkg/tracking"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
	events         tracking.Emitter
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service, events tracking.Emitter) *ProductHandler {
	if events == nil {
		events = tracking.Nop{}
	}
	return &ProductHandler{
		productService: productService,
		events:         events,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var filter product.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.productService.List(filter)

	if filter != (product.ListFilter{}) {
		h.events.Emit(c.Request.Context(), tracking.New(tracking.EventFilterApplied, middleware.GetSessionID(c), map[string]any{
			"category":     string(filter.Category),
			"featured":     filter.Featured,
			"trending":     filter.Trending,
			"sort":         filter.Sort,
			"result_count": len(products),
		}))
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.productService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	h.events.Emit(c.Request.Context(), tracking.New(tracking.EventProductView, middleware.GetSessionID(c), map[string]any{
		"product_id": p.ID,
		"name":       p.Name,
		"category":   string(p.Category),
		"price":      p.Price,
	}))

	c.JSON(http.StatusOK, p)
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = n
	}

	results := h.productService.Search(query, limit)

	if len([]rune(query)) >= product.MinSearchLength {
		h.events.Emit(c.Request.Context(), tracking.New(tracking.EventSearch, middleware.GetSessionID(c), map[string]any{
			"query":        query,
			"result_count": len(results),
		}))
	}

	c.JSON(http.StatusOK, results)
}
