package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"gorm.io/gorm"
)

var departmentColumns = EntityColumns{
	Columns: map[string]string{
		"code":        "code",
		"name":        "name",
		"description": "description",
	},
	DefaultSort: "code ASC",
}

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create allocates the department's DV code and inserts in one transaction
func (r *GormDepartmentRepository) Create(ctx context.Context, department *union.Department) error {
	return CreateWithCode(ctx, r.db, department.TableName(), shared.DepartmentCodeRule,
		func(code string) { department.Code = code },
		func(tx *gorm.DB) error { return tx.Create(department).Error },
	)
}

// Save persists changes to an existing department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *union.Department) error {
	result := r.db.WithContext(ctx).Save(department)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a department by ID, excluding soft-deleted records
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Department, error) {
	var department union.Department
	err := r.db.WithContext(ctx).
		First(&department, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// FindByCode finds a department by business code
func (r *GormDepartmentRepository) FindByCode(ctx context.Context, code string) (*union.Department, error) {
	var department union.Department
	err := r.db.WithContext(ctx).
		First(&department, "code = ? AND is_deleted = ?", code, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// List returns a page of departments matching the query
func (r *GormDepartmentRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Department, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), departmentColumns, query, &union.Department{})
	if err != nil {
		return nil, 0, err
	}
	var departments []union.Department
	if err := db.Find(&departments).Error; err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

var _ union.DepartmentRepository = (*GormDepartmentRepository)(nil)
