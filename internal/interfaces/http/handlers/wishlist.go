// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/wishlist"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
	cartService     *cart.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service, cartService *cart.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		cartService:     cartService,
	}
}

// MoveToCartRequest selects the variant added to the cart
type MoveToCartRequest struct {
	Quantity int     `json:"quantity"`
	Size     *string `json:"size"`
	Color    *string `json:"color"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.wishlistService.GetWishlist(c.Request.Context(), middleware.GetSessionID(c)))
}

// AddToWishlist handles POST /wishlist. Saving a product twice is not an
// error; the response status tells whether it was newly added.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req wishlist.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	w, added, err := h.wishlistService.Add(c.Request.Context(), middleware.GetSessionID(c), req.ProductID)
	if err != nil {
		h.productError(c, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, w)
}

// ToggleWishlistItem handles POST /wishlist/:product_id/toggle
func (h *WishlistHandler) ToggleWishlistItem(c *gin.Context) {
	w, saved, err := h.wishlistService.Toggle(c.Request.Context(), middleware.GetSessionID(c), c.Param("product_id"))
	if err != nil {
		h.productError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved":    saved,
		"wishlist": w,
	})
}

// CheckItemInWishlist handles GET /wishlist/:product_id
func (h *WishlistHandler) CheckItemInWishlist(c *gin.Context) {
	w := h.wishlistService.GetWishlist(c.Request.Context(), middleware.GetSessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"product_id":  c.Param("product_id"),
		"in_wishlist": w.Contains(c.Param("product_id")),
	})
}

// RemoveFromWishlist handles DELETE /wishlist/:product_id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.wishlistService.Remove(c.Request.Context(), middleware.GetSessionID(c), c.Param("product_id")))
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.wishlistService.Clear(c.Request.Context(), middleware.GetSessionID(c)))
}

// MoveToCart handles POST /wishlist/:product_id/move-to-cart. The product is
// added to the cart first and only then dropped from the wishlist.
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	var req MoveToCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request data",
				"details": err.Error(),
			})
			return
		}
	}

	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)
	productID := c.Param("product_id")

	updated, err := h.cartService.AddItem(ctx, sessionID, cart.AddItemRequest{
		ProductID: productID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		h.productError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":     updated,
		"wishlist": h.wishlistService.Remove(ctx, sessionID, productID),
	})
}

func (h *WishlistHandler) productError(c *gin.Context, err error) {
	if errors.Is(err, wishlist.ErrProductNotFound) || errors.Is(err, cart.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to update wishlist",
	})
}
