// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

// InvoiceRenderer produces invoice documents for placed orders
type InvoiceRenderer interface {
	RenderHTML(o *order.Order) ([]byte, error)
	GenerateInvoice(o *order.Order) (*bytes.Buffer, error)
}

// InvoiceHandler handles invoice-related endpoints
type InvoiceHandler struct {
	orders   *OrderHandler
	renderer InvoiceRenderer
	log      logrus.FieldLogger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(orderService *order.Service, renderer InvoiceRenderer, log logrus.FieldLogger) *InvoiceHandler {
	return &InvoiceHandler{
		orders:   NewOrderHandler(orderService),
		renderer: renderer,
		log:      log,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice. With format=html the
// invoice page is returned instead of the PDF.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	o, ok := h.orders.lookup(c)
	if !ok {
		return
	}

	if c.Query("format") == "html" {
		page, err := h.renderer.RenderHTML(o)
		if err != nil {
			h.fail(c, o, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	pdfBuffer, err := h.renderer.GenerateInvoice(o)
	if err != nil {
		h.fail(c, o, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.OrderNumber))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

// GetInvoiceData handles GET /orders/:id/invoice/data (for frontend preview)
func (h *InvoiceHandler) GetInvoiceData(c *gin.Context) {
	o, ok := h.orders.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice_number": pdf.InvoiceNumber(o),
		"invoice_date":   o.CreatedAt.Format("January 2, 2006"),
		"order":          o,
	})
}

func (h *InvoiceHandler) fail(c *gin.Context, o *order.Order, err error) {
	h.log.WithError(err).WithField("order_id", o.ID).Error("Failed to generate invoice")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to generate invoice",
	})
}
