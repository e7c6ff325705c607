package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/document"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// UploadDocumentRequest carries an uploaded file and its metadata. Owner
// fields are optional; an unattached document can be linked later.
type UploadDocumentRequest struct {
	FileName    string
	ContentType string
	Data        []byte
	Description string
	OwnerType   string
	OwnerID     *uuid.UUID
}

// AttachDocumentRequest links an existing document to an owning record
type AttachDocumentRequest struct {
	OwnerType string    `json:"ownerType" binding:"required,min=1,max=50"`
	OwnerID   uuid.UUID `json:"ownerId" binding:"required"`
}

// UpdateDocumentRequest patches a document's description
type UpdateDocumentRequest struct {
	Description string `json:"description"`
}

// DocumentResponse represents document metadata in API responses
type DocumentResponse struct {
	ID          uuid.UUID       `json:"id"`
	FileName    string          `json:"fileName"`
	ContentType string          `json:"contentType"`
	Size        int64           `json:"size"`
	OwnerType   string          `json:"ownerType,omitempty"`
	OwnerID     *uuid.UUID      `json:"ownerId,omitempty"`
	Description string          `json:"description"`
	History     shared.History  `json:"history"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CreatedBy   shared.ActorRef `json:"createdBy"`
	UpdatedBy   shared.ActorRef `json:"updatedBy"`
}

// DownloadResult carries a blob with the metadata needed for the response
// headers
type DownloadResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ToDocumentResponse converts domain document metadata to a response DTO.
// The storage key stays internal.
func ToDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		OwnerType:   d.OwnerType,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		History:     d.History,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CreatedBy:   d.CreatedBy,
		UpdatedBy:   d.UpdatedBy,
	}
}

// ToDocumentResponses converts a slice of domain documents
func ToDocumentResponses(documents []document.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = ToDocumentResponse(&documents[i])
	}
	return responses
}
