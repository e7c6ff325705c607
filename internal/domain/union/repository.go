package union

import (
	"context"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// UnionistRepository is the persistence contract for unionists.
// Create allocates the CD code and inserts in one transaction.
// List and lookups exclude soft-deleted records.
type UnionistRepository interface {
	Create(ctx context.Context, unionist *Unionist) error
	Save(ctx context.Context, unionist *Unionist) error
	FindByID(ctx context.Context, id uuid.UUID) (*Unionist, error)
	FindByCode(ctx context.Context, code string) (*Unionist, error)
	List(ctx context.Context, query shared.ListQuery) ([]Unionist, int64, error)
}

// DepartmentRepository is the persistence contract for departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *Department) error
	Save(ctx context.Context, department *Department) error
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindByCode(ctx context.Context, code string) (*Department, error)
	List(ctx context.Context, query shared.ListQuery) ([]Department, int64, error)
}

// PostRepository is the persistence contract for posts
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	Save(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context, query shared.ListQuery) ([]Post, int64, error)
}
