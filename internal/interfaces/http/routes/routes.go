// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/interfaces/http/handlers"
)

// Handlers groups every handler mounted under the API prefix. Analytics and
// Seed are optional; their routes are skipped when nil.
type Handlers struct {
	Product   *handlers.ProductHandler
	Category  *handlers.CategoryHandler
	Cart      *handlers.CartHandler
	Checkout  *handlers.CheckoutHandler
	Order     *handlers.OrderHandler
	Invoice   *handlers.InvoiceHandler
	Wishlist  *handlers.WishlistHandler
	User      *handlers.UserProfileHandler
	Analytics *handlers.AnalyticsHandler
	Seed      *handlers.SeedHandler
}

// SetupRoutes mounts all API routes on rg
func SetupRoutes(rg *gin.RouterGroup, h Handlers) {
	SetupProductRoutes(rg, h)
	SetupCartRoutes(rg, h)
	SetupCheckoutRoutes(rg, h)
	SetupOrderRoutes(rg, h)
	SetupWishlistRoutes(rg, h)
	SetupUserRoutes(rg, h)
	SetupInternalRoutes(rg, h)
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, h Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.GetProducts)
		products.GET("/search", h.Product.SearchProducts)
		products.GET("/:id", h.Product.GetProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Category.GetCategories)
		categories.GET("/:slug", h.Category.GetCategory)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, h Handlers) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.GET("/count", h.Cart.GetCartCount)
		cart.POST("/add", h.Cart.AddToCart)
		cart.PUT("/item/:id", h.Cart.UpdateCartItem)
		cart.DELETE("/item/:id", h.Cart.RemoveCartItem)
		cart.DELETE("", h.Cart.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, h Handlers) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", h.Checkout.GetSummary)
		checkout.POST("/progress", h.Checkout.RecordProgress)
		checkout.POST("/selection", h.Checkout.RecordSelection)
	}
}

// SetupOrderRoutes sets up order routes
func SetupOrderRoutes(rg *gin.RouterGroup, h Handlers) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("", h.Order.GetOrders)
		orders.GET("/:id", h.Order.GetOrder)
		orders.GET("/:id/tracking", h.Order.TrackOrder)
		orders.GET("/:id/invoice", h.Invoice.GenerateInvoice)
		orders.GET("/:id/invoice/data", h.Invoice.GetInvoiceData)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, h Handlers) {
	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.GetWishlist)
		wishlist.POST("", h.Wishlist.AddToWishlist)
		wishlist.DELETE("", h.Wishlist.ClearWishlist)
		wishlist.GET("/:product_id", h.Wishlist.CheckItemInWishlist)
		wishlist.DELETE("/:product_id", h.Wishlist.RemoveFromWishlist)
		wishlist.POST("/:product_id/toggle", h.Wishlist.ToggleWishlistItem)
		wishlist.POST("/:product_id/move-to-cart", h.Wishlist.MoveToCart)
	}
}

// SetupUserRoutes sets up account routes
func SetupUserRoutes(rg *gin.RouterGroup, h Handlers) {
	user := rg.Group("/user")
	{
		user.GET("", h.User.GetProfile)
		user.PUT("", h.User.UpdateProfile)
		user.GET("/dashboard", h.User.GetDashboard)
	}
}

// SetupInternalRoutes sets up seeding and event inspection routes
func SetupInternalRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Seed != nil {
		rg.POST("/seed", h.Seed.Seed)
	}
	if h.Analytics != nil {
		rg.GET("/tracking/events", h.Analytics.GetEvents)
	}
}
