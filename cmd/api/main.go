// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/checkout"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/hfashion/storefront/internal/domain/wishlist"
	httpserver "github.com/hfashion/storefront/internal/interfaces/http"
	"github.com/hfashion/storefront/internal/interfaces/http/handlers"
	"github.com/hfashion/storefront/internal/interfaces/http/routes"
	"github.com/hfashion/storefront/internal/pkg/auth"
	"github.com/hfashion/storefront/internal/pkg/logger"
	"github.com/hfashion/storefront/internal/pkg/pdf"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront")

	ctx := context.Background()

	b, err := openBackend(ctx, cfg, logg)
	if err != nil {
		logg.WithError(err).Fatal("Failed to open storage")
	}

	// Tracking sinks
	recorder := tracking.NewRecorder(tracking.DefaultHistory)
	events := tracking.Multi{tracking.Logger{Log: logg}, recorder}
	if b.redis != nil {
		events = append(events, tracking.NewRedisPublisher(b.redis.GetClient(), cfg.Redis.EventChannel, logg))
	}

	// Domain services
	catalog := product.NewService(b.products)
	carts := cart.NewService(b.store, catalog, events, logg)
	users := user.NewService(b.store, logg)
	pricing := order.PricingFromConfig(cfg.Pricing)
	orders := order.NewService(b.store, carts, users, pricing, events, logg)
	checkouts := checkout.NewService(carts, pricing, events, logg)
	wishlists := wishlist.NewService(b.store, catalog, events, logg)

	opts := httpserver.Options{
		Handlers: routes.Handlers{
			Product:   handlers.NewProductHandler(catalog, events),
			Category:  handlers.NewCategoryHandler(catalog),
			Cart:      handlers.NewCartHandler(carts),
			Checkout:  handlers.NewCheckoutHandler(checkouts),
			Order:     handlers.NewOrderHandler(orders),
			Invoice:   handlers.NewInvoiceHandler(orders, pdf.NewService(cfg.Invoice), logg),
			Wishlist:  handlers.NewWishlistHandler(wishlists, carts),
			User:      handlers.NewUserProfileHandler(users, carts, orders, wishlists),
			Analytics: handlers.NewAnalyticsHandler(recorder),
			Seed:      handlers.NewSeedHandler(b.seeder, catalog, logg),
		},
		Sessions: auth.NewSessionManager(cfg.Session, cfg.App.Name),
		Checks:   b.checks,
		Log:      logg,
	}
	if b.redis != nil {
		opts.Redis = b.redis.GetClient()
	}

	server := httpserver.NewServer(cfg, opts)

	logg.WithField("products", catalog.Len()).Info("All systems operational")

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logg.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}
	b.close(shutdownCtx, logg)

	logg.Info("Server shutdown completed")
}
