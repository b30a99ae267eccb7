// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// DeliveryWindow is the gap between placing an order and its estimated delivery
const DeliveryWindow = 7 * 24 * time.Hour

// Address is the shipping address captured at checkout
type Address struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Country   string `json:"country"`
	Phone     string `json:"phone" binding:"required"`
}

// FullName returns first and last name joined
func (a Address) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Order is a placed order. Everything but Status is fixed at creation.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            string          `json:"user_id"`
	Items             []cart.CartItem `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Shipping          decimal.Decimal `json:"shipping"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   Address         `json:"shipping_address"`
	TrackingNumber    string          `json:"tracking_number"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ItemCount returns the number of units ordered
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// FreeShipping reports whether the order shipped at no charge
func (o *Order) FreeShipping() bool {
	return o.Shipping.IsZero()
}

// Clone returns a deep copy of the order
func (o *Order) Clone() *Order {
	out := *o
	out.Items = make([]cart.CartItem, len(o.Items))
	for i, item := range o.Items {
		out.Items[i] = item.Clone()
	}
	return &out
}
