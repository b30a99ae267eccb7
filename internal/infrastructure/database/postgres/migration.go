// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log logrus.FieldLogger) *Migration {
	return &Migration{db: db, log: log}
}

// RunAutoMigrations creates or updates the storefront tables
func (m *Migration) RunAutoMigrations() error {
	models := []interface{}{
		&Document{},
		&product.Product{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.WithField("models", len(models)).Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for catalog queries
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured) WHERE is_featured",
		"CREATE INDEX IF NOT EXISTS idx_products_trending ON products(is_trending) WHERE is_trending",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents(updated_at)",
	}

	failed := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("Failed to create index")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d indexes failed", failed, len(indexes))
	}
	return nil
}

// SeedCatalog upserts products, numbering them in the given order
func (m *Migration) SeedCatalog(products []product.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	rows := make([]product.Product, len(products))
	for i, p := range products {
		p.Position = i + 1
		rows[i] = p
	}

	err := m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	m.log.WithField("products", len(rows)).Info("Catalog seeded")
	return len(rows), nil
}

// LoadCatalog reads every product in catalog order
func (m *Migration) LoadCatalog() ([]product.Product, error) {
	var products []product.Product
	if err := m.db.Order("position").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}
