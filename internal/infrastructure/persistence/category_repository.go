package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var categoryColumns = EntityColumns{
	Columns: map[string]string{
		"code":        "code",
		"name":        "name",
		"year":        "year",
		"budget":      "budget",
		"description": "description",
	},
	DefaultSort: "year DESC, created_at DESC",
}

// GormCategoryRepository implements CategoryRepository using GORM. Income and
// expense categories share one table; every query is pinned to a kind.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create inserts a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *finance.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Save persists changes to an existing category
func (r *GormCategoryRepository) Save(ctx context.Context, category *finance.Category) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a category by ID, excluding soft-deleted records
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Category, error) {
	var category finance.Category
	err := r.db.WithContext(ctx).
		First(&category, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// List returns a page of categories of the given kind matching the query
func (r *GormCategoryRepository) List(ctx context.Context, kind finance.CategoryKind, query shared.ListQuery) ([]finance.Category, int64, error) {
	base := r.db.WithContext(ctx).Where("kind = ?", kind)
	db, total, err := ApplyListQuery(base, categoryColumns, query, &finance.Category{})
	if err != nil {
		return nil, 0, err
	}
	var categories []finance.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// SumBudget totals the budget column over the filtered set of one kind
func (r *GormCategoryRepository) SumBudget(ctx context.Context, kind finance.CategoryKind, query shared.ListQuery) (decimal.Decimal, error) {
	db := r.db.WithContext(ctx).Model(&finance.Category{}).Where("kind = ?", kind)
	return sumColumn(ApplyFilter(db, categoryColumns, query.Conditions), "budget")
}

var _ finance.CategoryRepository = (*GormCategoryRepository)(nil)
