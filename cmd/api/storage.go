// cmd/api/storage.go
package main

import (
	"context"
	"fmt"

	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/infrastructure/database/mongo"
	"github.com/hfashion/storefront/internal/infrastructure/database/postgres"
	"github.com/hfashion/storefront/internal/infrastructure/database/redis"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	httpserver "github.com/hfashion/storefront/internal/interfaces/http"
	"github.com/hfashion/storefront/internal/interfaces/http/handlers"
	"github.com/sirupsen/logrus"
)

// backend is the storage selected by configuration plus the resources that
// must be released on shutdown
type backend struct {
	store    storage.Store
	redis    *redis.Client
	seeder   handlers.CatalogSeeder
	products []product.Product
	checks   map[string]httpserver.HealthCheck
	closers  []func(context.Context) error
}

func (b *backend) close(ctx context.Context, log logrus.FieldLogger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			log.WithError(err).Warn("Failed to close connection")
		}
	}
}

func openBackend(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*backend, error) {
	b := &backend{
		products: product.Seed(),
		checks:   make(map[string]httpserver.HealthCheck),
	}

	if cfg.UsesRedis() {
		client, err := redis.NewConnection(cfg, log)
		if err != nil {
			return nil, err
		}
		b.redis = client
		b.checks["redis"] = client.Health
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
	}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		b.store = storage.NewMemory()

	case config.StorageRedis:
		b.store = redis.NewStore(b.redis.GetClient(), cfg.Storage.CartTTL)

	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.checks["database"] = db.Health
		b.closers = append(b.closers, func(context.Context) error { return db.Close() })

		if err := prepareCatalog(b, postgres.NewMigration(db.GetDB(), log), log); err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.store = postgres.NewStore(db.GetDB())

	case config.StorageMongo:
		client, err := mongo.NewConnection(ctx, cfg.Mongo, log)
		if err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.checks["mongo"] = client.Health
		b.closers = append(b.closers, client.Close)
		b.store = mongo.NewStore(client.Documents())

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	log.WithField("driver", cfg.Storage.Driver).Info("Storage ready")
	return b, nil
}

// prepareCatalog migrates the schema, seeds the built-in catalog and loads
// the catalog back from the products table
func prepareCatalog(b *backend, migration *postgres.Migration, log logrus.FieldLogger) error {
	if err := migration.RunAutoMigrations(); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	if err := migration.CreateIndexes(); err != nil {
		log.WithError(err).Warn("Index creation failed")
	}

	if _, err := migration.SeedCatalog(b.products); err != nil {
		log.WithError(err).Warn("Catalog seeding failed")
	}

	products, err := migration.LoadCatalog()
	switch {
	case err != nil:
		log.WithError(err).Warn("Falling back to the built-in catalog")
	case len(products) > 0:
		b.products = products
	}

	b.seeder = migration
	return nil
}
