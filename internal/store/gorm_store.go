package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one row of the documents table: a named JSON blob.
type Document struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Document) TableName() string { return "documents" }

// GormDocuments implements Documents on the database.
type GormDocuments struct {
	db *DB
}

func NewGormDocuments(db *DB) *GormDocuments { return &GormDocuments{db: db} }

func (g *GormDocuments) Get(ctx context.Context, key string) (string, bool, error) {
	var doc Document
	err := g.db.gorm.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "get document")
	}
	return doc.Value, true, nil
}

func (g *GormDocuments) Set(ctx context.Context, key, raw string) error {
	doc := Document{Key: key, Value: raw, UpdatedAt: time.Now().UTC()}
	err := g.db.gorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	return errors.Wrap(err, "set document")
}

func (g *GormDocuments) Delete(ctx context.Context, key string) error {
	err := g.db.gorm.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
	return errors.Wrap(err, "delete document")
}

func (g *GormDocuments) Reset(ctx context.Context) error {
	for _, key := range AllKeys {
		if err := g.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
