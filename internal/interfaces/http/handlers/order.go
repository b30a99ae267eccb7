// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.PlaceOrder(c.Request.Context(), middleware.GetSessionID(c), req.ShippingAddress)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// GetOrders handles GET /orders, newest first
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.ListOrders(c.Request.Context(), middleware.GetSessionID(c)))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, o)
}

// TrackOrder handles GET /orders/:id/tracking
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	o, ok := h.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_number":       o.OrderNumber,
		"status":             o.Status,
		"tracking_number":    o.TrackingNumber,
		"estimated_delivery": o.EstimatedDelivery,
	})
}

// lookup resolves the :id order of the current session, writing a 404 when
// it does not exist
func (h *OrderHandler) lookup(c *gin.Context) (*order.Order, bool) {
	o, err := h.orderService.GetOrder(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return nil, false
	}
	return o, true
}
