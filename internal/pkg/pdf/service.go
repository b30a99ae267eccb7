// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/pkg/money"
)

const dateLayout = "January 2, 2006"

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": money.Format,
	"date":  func(t time.Time) string { return t.Format(dateLayout) },
	"lineTotal": func(item cart.CartItem) string {
		return money.Format(money.Cents(item.LineTotal()))
	},
	"variant": func(item cart.CartItem) string {
		switch {
		case item.Size != nil && item.Color != nil:
			return *item.Size + " / " + *item.Color
		case item.Size != nil:
			return *item.Size
		case item.Color != nil:
			return *item.Color
		}
		return ""
	},
}).Parse(invoiceTemplate))

// Service handles PDF generation
type Service struct {
	company CompanyInfo
}

// NewService creates a new PDF service
func NewService(cfg config.InvoiceConfig) *Service {
	return &Service{
		company: CompanyInfo{
			Name:    cfg.CompanyName,
			Address: cfg.CompanyAddress,
			Email:   cfg.CompanyEmail,
			Website: cfg.CompanyWebsite,
		},
	}
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string
	Order         *order.Order
	Company       CompanyInfo
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
	Website string
}

// InvoiceNumber derives the invoice number printed for an order
func InvoiceNumber(o *order.Order) string {
	return "INV-" + o.OrderNumber
}

// RenderHTML renders the invoice page for an order
func (s *Service) RenderHTML(o *order.Order) ([]byte, error) {
	var buf bytes.Buffer
	err := invoiceTmpl.Execute(&buf, InvoiceData{
		InvoiceNumber: InvoiceNumber(o),
		Order:         o,
		Company:       s.company,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateInvoice generates a PDF invoice for an order. It needs the
// wkhtmltopdf binary on PATH.
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	html, err := s.RenderHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeLetter)
	pdfg.Title.Set(InvoiceNumber(o))

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}
