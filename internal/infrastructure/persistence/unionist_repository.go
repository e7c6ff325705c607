package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"gorm.io/gorm"
)

// unionistColumns is the query-field allow-list for unionists
var unionistColumns = EntityColumns{
	Columns: map[string]string{
		"code":         "code",
		"fullName":     "full_name",
		"gender":       "gender",
		"email":        "email",
		"phone":        "phone",
		"address":      "address",
		"dateOfBirth":  "date_of_birth",
		"joinedDate":   "joined_date",
		"departmentId": "department_id",
		"postId":       "post_id",
	},
	Relations: map[string]string{
		"department": "Department",
		"post":       "Post",
	},
	DefaultSort: "created_at DESC",
}

// GormUnionistRepository implements UnionistRepository using GORM
type GormUnionistRepository struct {
	db *gorm.DB
}

// NewGormUnionistRepository creates a new GormUnionistRepository
func NewGormUnionistRepository(db *gorm.DB) *GormUnionistRepository {
	return &GormUnionistRepository{db: db}
}

// Create allocates the unionist's CD code and inserts in one transaction
func (r *GormUnionistRepository) Create(ctx context.Context, unionist *union.Unionist) error {
	return CreateWithCode(ctx, r.db, unionist.TableName(), shared.UnionistCodeRule,
		func(code string) { unionist.Code = code },
		func(tx *gorm.DB) error { return tx.Create(unionist).Error },
	)
}

// Save persists changes to an existing unionist
func (r *GormUnionistRepository) Save(ctx context.Context, unionist *union.Unionist) error {
	result := r.db.WithContext(ctx).Save(unionist)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a unionist by ID, excluding soft-deleted records
func (r *GormUnionistRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Unionist, error) {
	var unionist union.Unionist
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Post").
		First(&unionist, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unionist, nil
}

// FindByCode finds a unionist by business code
func (r *GormUnionistRepository) FindByCode(ctx context.Context, code string) (*union.Unionist, error) {
	var unionist union.Unionist
	err := r.db.WithContext(ctx).
		First(&unionist, "code = ? AND is_deleted = ?", code, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unionist, nil
}

// List returns a page of unionists matching the query
func (r *GormUnionistRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Unionist, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), unionistColumns, query, &union.Unionist{})
	if err != nil {
		return nil, 0, err
	}
	var unionists []union.Unionist
	if err := db.Find(&unionists).Error; err != nil {
		return nil, 0, err
	}
	return unionists, total, nil
}

var _ union.UnionistRepository = (*GormUnionistRepository)(nil)
