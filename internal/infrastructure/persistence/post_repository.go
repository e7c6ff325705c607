package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"gorm.io/gorm"
)

var postColumns = EntityColumns{
	Columns: map[string]string{
		"name":        "name",
		"description": "description",
	},
	DefaultSort: "name ASC",
}

// GormPostRepository implements PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create inserts a new post
func (r *GormPostRepository) Create(ctx context.Context, post *union.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Save persists changes to an existing post
func (r *GormPostRepository) Save(ctx context.Context, post *union.Post) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a post by ID, excluding soft-deleted records
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Post, error) {
	var post union.Post
	err := r.db.WithContext(ctx).
		First(&post, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts matching the query
func (r *GormPostRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Post, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), postColumns, query, &union.Post{})
	if err != nil {
		return nil, 0, err
	}
	var posts []union.Post
	if err := db.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

var _ union.PostRepository = (*GormPostRepository)(nil)
