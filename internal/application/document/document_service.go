package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/document"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/storage"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// presignExpiry is how long a generated download link stays valid
const presignExpiry = 15 * time.Minute

// DocumentService handles document upload, download and attachment. Blobs
// live in object storage; only metadata is persisted in the database.
type DocumentService struct {
	documentRepo document.DocumentRepository
	objects      storage.ObjectStorage
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentRepo document.DocumentRepository, objects storage.ObjectStorage) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		objects:      objects,
	}
}

// Upload stores the blob and records its metadata. The blob goes to object
// storage first; if the metadata insert fails the orphaned blob is removed.
func (s *DocumentService) Upload(ctx context.Context, req UploadDocumentRequest, actor shared.ActorRef) (*DocumentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "upload")
	defer span.End()

	doc, err := document.NewDocument(req.FileName, req.ContentType, storageKey(req.FileName), int64(len(req.Data)), actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	doc.Description = req.Description

	if req.OwnerType != "" && req.OwnerID != nil {
		if err := doc.Attach(req.OwnerType, *req.OwnerID, actor); err != nil {
			return nil, err
		}
	}

	if err := s.objects.Upload(ctx, doc.StorageKey, req.Data, req.ContentType); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		telemetry.RecordError(span, err)
		if cleanupErr := s.objects.Delete(ctx, doc.StorageKey); cleanupErr != nil {
			telemetry.AddEvent(span, "orphan_blob_cleanup_failed", "storage_key", doc.StorageKey)
		}
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// GetByID retrieves document metadata by ID
func (s *DocumentService) GetByID(ctx context.Context, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// List retrieves document metadata matching the query with pagination
func (s *DocumentService) List(ctx context.Context, query shared.ListQuery) ([]DocumentResponse, int64, error) {
	documents, total, err := s.documentRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToDocumentResponses(documents), total, nil
}

// ListByOwner retrieves every document attached to one record
func (s *DocumentService) ListByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]DocumentResponse, error) {
	documents, err := s.documentRepo.FindByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	return ToDocumentResponses(documents), nil
}

// Download fetches the blob together with its response metadata
func (s *DocumentService) Download(ctx context.Context, id uuid.UUID) (*DownloadResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "download")
	defer span.End()

	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	data, err := s.objects.Download(ctx, doc.StorageKey)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &DownloadResult{
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Data:        data,
	}, nil
}

// PresignDownload returns a short-lived direct download URL
func (s *DocumentService) PresignDownload(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.objects.PresignDownload(ctx, doc.StorageKey, presignExpiry)
}

// Attach links a document to an owning record
func (s *DocumentService) Attach(ctx context.Context, id uuid.UUID, req AttachDocumentRequest, actor shared.ActorRef) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := doc.Attach(req.OwnerType, req.OwnerID, actor); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// Update patches a document's description
func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest, actor shared.ActorRef) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.UpdateDescription(req.Description, actor)

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// Delete soft-deletes the metadata row. The blob is kept so the audit trail
// of the owning record stays complete.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !doc.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.documentRepo.Save(ctx, doc)
}

// storageKey builds a collision-free object key for an upload
func storageKey(fileName string) string {
	return fmt.Sprintf("documents/%s/%s", uuid.New(), fileName)
}
