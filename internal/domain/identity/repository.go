package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for users. Create
// allocates the user's STU code and inserts the row in one transaction.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByCode(ctx context.Context, code string) (*User, error)
	List(ctx context.Context, query shared.ListQuery) ([]User, int64, error)
}

// RoleRepository defines the persistence interface for roles
type RoleRepository interface {
	Save(ctx context.Context, role *Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context, query shared.ListQuery) ([]Role, int64, error)
	ReplacePermissions(ctx context.Context, role *Role, permissions []Permission) error
}

// PermissionRepository defines the persistence interface for permissions
type PermissionRepository interface {
	Save(ctx context.Context, permission *Permission) error
	FindByID(ctx context.Context, id uuid.UUID) (*Permission, error)
	FindAll(ctx context.Context) ([]Permission, error)
}
