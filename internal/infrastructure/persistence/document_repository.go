package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/document"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var documentColumns = EntityColumns{
	Columns: map[string]string{
		"fileName":    "file_name",
		"contentType": "content_type",
		"size":        "size",
		"ownerType":   "owner_type",
		"ownerId":     "owner_id",
		"description": "description",
	},
	DefaultSort: "created_at DESC",
}

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Save persists a document record, creating it if new
func (r *GormDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// FindByID finds a document by ID, excluding soft-deleted records
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	var doc document.Document
	err := r.db.WithContext(ctx).
		First(&doc, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByOwner returns every document attached to one owning record
func (r *GormDocumentRepository) FindByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND is_deleted = ?", ownerType, ownerID, false).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// List returns a page of documents matching the query
func (r *GormDocumentRepository) List(ctx context.Context, query shared.ListQuery) ([]document.Document, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), documentColumns, query, &document.Document{})
	if err != nil {
		return nil, 0, err
	}
	var docs []document.Document
	if err := db.Find(&docs).Error; err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

var _ document.DocumentRepository = (*GormDocumentRepository)(nil)
