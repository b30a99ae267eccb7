// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.GetCart(c.Request.Context(), middleware.GetSessionID(c)))
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": h.cartService.ItemCount(c.Request.Context(), middleware.GetSessionID(c)),
	})
}

// AddToCart handles POST /cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.cartService.AddItem(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		if errors.Is(err, cart.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateCartItem handles PUT /cart/item/:id. The optional size and color
// query parameters target a single variant line.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.setQuantity(c, *req.Quantity))
}

// RemoveCartItem handles DELETE /cart/item/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.setQuantity(c, 0))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Clear(c.Request.Context(), middleware.GetSessionID(c)))
}

func (h *CartHandler) setQuantity(c *gin.Context, quantity int) *cart.Cart {
	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)
	productID := c.Param("id")

	size, hasSize := c.GetQuery("size")
	color, hasColor := c.GetQuery("color")
	if hasSize || hasColor {
		return h.cartService.UpdateLine(ctx, sessionID, productID, &size, &color, quantity)
	}
	return h.cartService.UpdateItemQuantity(ctx, sessionID, productID, quantity)
}
