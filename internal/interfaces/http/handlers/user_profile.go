// internal/interfaces/http/handlers/user_profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/hfashion/storefront/internal/domain/wishlist"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
)

// recentOrderLimit is how many orders the account dashboard shows
const recentOrderLimit = 3

// UserProfileHandler handles account endpoints
type UserProfileHandler struct {
	userService     *user.Service
	cartService     *cart.Service
	orderService    *order.Service
	wishlistService *wishlist.Service
}

// NewUserProfileHandler creates a new user profile handler
func NewUserProfileHandler(userService *user.Service, cartService *cart.Service, orderService *order.Service, wishlistService *wishlist.Service) *UserProfileHandler {
	return &UserProfileHandler{
		userService:     userService,
		cartService:     cartService,
		orderService:    orderService,
		wishlistService: wishlistService,
	}
}

// GetProfile handles GET /user
func (h *UserProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.GetProfile(c.Request.Context(), middleware.GetSessionID(c)))
}

// UpdateProfile handles PUT /user. The fields come from a JSON body, or
// from query parameters when the request has no body.
func (h *UserProfileHandler) UpdateProfile(c *gin.Context) {
	var req user.UpdateProfileRequest
	bind := c.ShouldBindJSON
	if c.Request.ContentLength == 0 {
		bind = c.ShouldBindQuery
	}
	if err := bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetDashboard handles GET /user/dashboard
func (h *UserProfileHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)

	orders := h.orderService.ListOrders(ctx, sessionID)
	recent := orders
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           h.userService.GetProfile(ctx, sessionID),
		"cart_count":     h.cartService.ItemCount(ctx, sessionID),
		"wishlist_count": h.wishlistService.GetWishlist(ctx, sessionID).Count,
		"order_count":    len(orders),
		"recent_orders":  recent,
	})
}
