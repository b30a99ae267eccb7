// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/checkout"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkoutService.GetSummary(c.Request.Context(), middleware.GetSessionID(c)))
}

// RecordProgress handles POST /checkout/progress
func (h *CheckoutHandler) RecordProgress(c *gin.Context) {
	var req checkout.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	summary, err := h.checkoutService.RecordProgress(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidStep) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checkout step",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record checkout progress",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RecordSelection handles POST /checkout/selection
func (h *CheckoutHandler) RecordSelection(c *gin.Context) {
	var req checkout.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.checkoutService.RecordSelection(c.Request.Context(), middleware.GetSessionID(c), req); err != nil {
		if errors.Is(err, checkout.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checkout selection",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record checkout selection",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":  req.Type,
		"value": req.Value,
	})
}
