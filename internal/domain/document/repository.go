package document

import (
	"context"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// DocumentRepository defines the persistence interface for document metadata
type DocumentRepository interface {
	Save(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]Document, error)
	List(ctx context.Context, query shared.ListQuery) ([]Document, int64, error)
}
