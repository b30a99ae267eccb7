package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one stored session document
type Document struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name
func (Document) TableName() string {
	return "documents"
}

// Store keeps session documents in the documents table
type Store struct {
	db *gorm.DB
}

// NewStore creates a PostgreSQL-backed document store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	doc := Document{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}
