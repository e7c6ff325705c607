package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var userColumns = EntityColumns{
	Columns: map[string]string{
		"code":     "code",
		"email":    "email",
		"fullName": "full_name",
		"gender":   "gender",
		"phone":    "phone",
		"address":  "address",
		"roleId":   "role_id",
	},
	Relations: map[string]string{
		"role": "Role",
	},
	DefaultSort: "created_at DESC",
}

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create allocates the user's STU code and inserts in one transaction
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	err := CreateWithCode(ctx, r.db, user.TableName(), shared.MemberCodeRule,
		func(code string) { user.Code = code },
		func(tx *gorm.DB) error { return tx.Create(user).Error },
	)
	if err != nil && isUniqueViolation(err) {
		// Retries in CreateWithCode only cover the code column; reaching here
		// means the email collided.
		return shared.ErrAlreadyExists
	}
	return err
}

// Save persists changes to an existing user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a user by ID with role and permissions, excluding
// soft-deleted records
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	err := r.db.WithContext(ctx).
		Preload("Role.Permissions").
		First(&user, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email (matching is case-insensitive because
// emails are lowered on write)
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := r.db.WithContext(ctx).
		Preload("Role.Permissions").
		First(&user, "email = ? AND is_deleted = ?", strings.ToLower(strings.TrimSpace(email)), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByCode finds a user by business code
func (r *GormUserRepository) FindByCode(ctx context.Context, code string) (*identity.User, error) {
	var user identity.User
	err := r.db.WithContext(ctx).
		First(&user, "code = ? AND is_deleted = ?", code, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns a page of users matching the query
func (r *GormUserRepository) List(ctx context.Context, query shared.ListQuery) ([]identity.User, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), userColumns, query, &identity.User{})
	if err != nil {
		return nil, 0, err
	}
	var users []identity.User
	if err := db.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
