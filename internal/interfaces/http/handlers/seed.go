// internal/interfaces/http/handlers/seed.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// CatalogSeeder writes catalog products to durable storage
type CatalogSeeder interface {
	SeedCatalog(products []product.Product) (int, error)
}

// SeedHandler handles catalog seeding
type SeedHandler struct {
	seeder  CatalogSeeder
	catalog *product.Service
	log     logrus.FieldLogger
}

// NewSeedHandler creates a new seed handler. seeder may be nil when no
// database is configured.
func NewSeedHandler(seeder CatalogSeeder, catalog *product.Service, log logrus.FieldLogger) *SeedHandler {
	return &SeedHandler{seeder: seeder, catalog: catalog, log: log}
}

// Seed handles POST /seed
func (h *SeedHandler) Seed(c *gin.Context) {
	if h.seeder == nil {
		c.JSON(http.StatusOK, gin.H{
			"seeded":       0,
			"persisted":    false,
			"catalog_size": h.catalog.Len(),
		})
		return
	}

	n, err := h.seeder.SeedCatalog(product.Seed())
	if err != nil {
		h.log.WithError(err).Error("Catalog seeding failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to seed catalog",
		})
		return
	}

	h.log.WithField("count", n).Info("Catalog seeded")
	c.JSON(http.StatusOK, gin.H{
		"seeded":       n,
		"persisted":    true,
		"catalog_size": h.catalog.Len(),
	})
}
