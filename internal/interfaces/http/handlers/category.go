// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/product"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	productService *product.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(productService *product.Service) *CategoryHandler {
	return &CategoryHandler{productService: productService}
}

// GetCategories handles GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.productService.Categories())
}

// GetCategory handles GET /categories/:slug
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	slug := product.Category(c.Param("slug"))
	if !slug.Valid() {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	for _, info := range h.productService.Categories() {
		if info.Slug == slug {
			c.JSON(http.StatusOK, gin.H{
				"category": info,
				"products": h.productService.List(product.ListFilter{Category: slug}),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "Category not found",
	})
}
