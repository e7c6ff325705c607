package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var roleColumns = EntityColumns{
	Columns: map[string]string{
		"name":        "name",
		"description": "description",
	},
	Relations: map[string]string{
		"permissions": "Permissions",
	},
	DefaultSort: "name ASC",
}

// GormRoleRepository implements RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Save persists a role, creating it if new
func (r *GormRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	err := r.db.WithContext(ctx).Omit("Permissions").Save(role).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// FindByID finds a role with its permissions
func (r *GormRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	var role identity.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&role, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// FindByName finds a role by name
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	var role identity.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&role, "name = ? AND is_deleted = ?", name, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// List returns a page of roles matching the query
func (r *GormRoleRepository) List(ctx context.Context, query shared.ListQuery) ([]identity.Role, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), roleColumns, query, &identity.Role{})
	if err != nil {
		return nil, 0, err
	}
	var roles []identity.Role
	if err := db.Find(&roles).Error; err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

// ReplacePermissions swaps the role's permission set
func (r *GormRoleRepository) ReplacePermissions(ctx context.Context, role *identity.Role, permissions []identity.Permission) error {
	if err := r.db.WithContext(ctx).Model(role).Association("Permissions").Replace(permissions); err != nil {
		return err
	}
	role.Permissions = permissions
	return nil
}

var _ identity.RoleRepository = (*GormRoleRepository)(nil)

// GormPermissionRepository implements PermissionRepository using GORM
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewGormPermissionRepository creates a new GormPermissionRepository
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// Save persists a permission
func (r *GormPermissionRepository) Save(ctx context.Context, permission *identity.Permission) error {
	err := r.db.WithContext(ctx).Save(permission).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// FindByID finds a permission by ID
func (r *GormPermissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Permission, error) {
	var permission identity.Permission
	err := r.db.WithContext(ctx).First(&permission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &permission, nil
}

// FindAll returns every permission
func (r *GormPermissionRepository) FindAll(ctx context.Context) ([]identity.Permission, error) {
	var permissions []identity.Permission
	if err := r.db.WithContext(ctx).Order("resource ASC, action ASC").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

var _ identity.PermissionRepository = (*GormPermissionRepository)(nil)
