package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/checkout"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/hfashion/storefront/internal/domain/wishlist"
	"github.com/hfashion/storefront/internal/pkg/tracking"
)

// Products lists catalog products
func (c *Client) Products(ctx context.Context, f product.ListFilter) ([]product.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", string(f.Category))
	}
	if f.Featured {
		q.Set("featured", "true")
	}
	if f.Trending {
		q.Set("trending", "true")
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}

	var out []product.Product
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches one product
func (c *Client) Product(ctx context.Context, id string) (*product.Product, error) {
	var out product.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a catalog search; limit 0 uses the server default
func (c *Client) Search(ctx context.Context, query string, limit int) ([]product.Product, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []product.Product
	if err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories lists departments with product counts
func (c *Client) Categories(ctx context.Context) ([]product.CategoryInfo, error) {
	var out []product.CategoryInfo
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cart returns the session's cart
func (c *Client) Cart(ctx context.Context) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodGet, "/cart", nil, nil)
}

// AddToCart adds a product variant to the cart
func (c *Client) AddToCart(ctx context.Context, req cart.AddItemRequest) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodPost, "/cart/add", nil, req)
}

// UpdateCartItem sets the quantity of a product; zero removes it
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodPut, "/cart/item/"+url.PathEscape(productID), nil,
		cart.UpdateItemRequest{Quantity: &quantity})
}

// UpdateCartLine sets the quantity of one variant line
func (c *Client) UpdateCartLine(ctx context.Context, productID, size, color string, quantity int) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodPut, "/cart/item/"+url.PathEscape(productID), variantQuery(size, color),
		cart.UpdateItemRequest{Quantity: &quantity})
}

// RemoveCartItem removes every line of a product
func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodDelete, "/cart/item/"+url.PathEscape(productID), nil, nil)
}

// ClearCart empties the cart
func (c *Client) ClearCart(ctx context.Context) (*cart.Cart, error) {
	return c.cartCall(ctx, http.MethodDelete, "/cart", nil, nil)
}

func (c *Client) cartCall(ctx context.Context, method, path string, q url.Values, body any) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.do(ctx, method, path, q, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckoutSummary prices the current cart without placing an order
func (c *Client) CheckoutSummary(ctx context.Context) (*checkout.Summary, error) {
	var out checkout.Summary
	if err := c.do(ctx, http.MethodGet, "/checkout/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder checks out the current cart
func (c *Client) PlaceOrder(ctx context.Context, addr order.Address) (*order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order.CreateOrderRequest{ShippingAddress: addr}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders lists the session's orders, newest first
func (c *Client) Orders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches one order
func (c *Client) Order(ctx context.Context, id string) (*order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invoice downloads an order's PDF invoice
func (c *Client) Invoice(ctx context.Context, id string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, c.baseURL+apiPrefix+"/orders/"+url.PathEscape(id)+"/invoice", nil,
		http.Header{"Accept": {"application/pdf"}})
}

// Wishlist returns the session's wishlist
func (c *Client) Wishlist(ctx context.Context) (*wishlist.Wishlist, error) {
	return c.wishlistCall(ctx, http.MethodGet, "/wishlist", nil)
}

// AddToWishlist saves a product
func (c *Client) AddToWishlist(ctx context.Context, productID string) (*wishlist.Wishlist, error) {
	return c.wishlistCall(ctx, http.MethodPost, "/wishlist", wishlist.AddToWishlistRequest{ProductID: productID})
}

// RemoveFromWishlist drops a saved product
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) (*wishlist.Wishlist, error) {
	return c.wishlistCall(ctx, http.MethodDelete, "/wishlist/"+url.PathEscape(productID), nil)
}

func (c *Client) wishlistCall(ctx context.Context, method, path string, body any) (*wishlist.Wishlist, error) {
	var out wishlist.Wishlist
	if err := c.do(ctx, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the session's account profile
func (c *Client) Profile(ctx context.Context) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, http.MethodGet, "/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the profile name and/or email
func (c *Client) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, http.MethodPut, "/user", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events returns recent tracking events of the session
func (c *Client) Events(ctx context.Context) ([]tracking.Event, error) {
	var out []tracking.Event
	if err := c.do(ctx, http.MethodGet, "/tracking/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func variantQuery(size, color string) url.Values {
	q := url.Values{}
	if size != "" {
		q.Set("size", size)
	}
	if color != "" {
		q.Set("color", color)
	}
	if len(q) == 0 {
		// an explicit empty size still selects the variant-exact update
		q.Set("size", "")
	}
	return q
}
