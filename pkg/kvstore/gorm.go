package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Document is a single persisted collection, one row per key.
type Document struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (Document) TableName() string {
	return "kv_documents"
}

// GormStore persists documents in a relational table via GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore runs the schema migration and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_documents: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return doc.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	doc := Document{Key: key, Value: value}
	err := s.db.WithContext(ctx).Save(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
