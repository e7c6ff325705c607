package document

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// Document is an uploaded file's metadata. The binary itself lives in
// object storage under StorageKey; the row only records what was uploaded,
// by whom, and which record it belongs to.
type Document struct {
	shared.BaseEntity
	shared.Auditable
	FileName    string         `gorm:"type:varchar(255);not null"`
	ContentType string         `gorm:"type:varchar(100);not null"`
	Size        int64          `gorm:"not null"`
	StorageKey  string         `gorm:"type:varchar(512);not null;uniqueIndex"`
	OwnerType   string         `gorm:"type:varchar(50);index:idx_document_owner"`
	OwnerID     *uuid.UUID     `gorm:"type:uuid;index:idx_document_owner"`
	Description string         `gorm:"type:text"`
	History     shared.History `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "documents"
}

// NewDocument records metadata for an uploaded file
func NewDocument(fileName, contentType, storageKey string, size int64, actor shared.ActorRef) (*Document, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "File name is required")
	}
	if storageKey == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Storage key is required")
	}
	if size <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "File size must be positive")
	}

	d := &Document{
		BaseEntity:  shared.NewBaseEntity(),
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		StorageKey:  storageKey,
		History:     shared.History{},
	}
	d.MarkCreated(actor)
	d.History.Append(actor, map[string]string{
		"fileName": d.FileName,
		"size":     formatSize(size),
	})
	return d, nil
}

// Attach links the document to an owning record, e.g. a receipt or unionist
func (d *Document) Attach(ownerType string, ownerID uuid.UUID, actor shared.ActorRef) error {
	ownerType = strings.TrimSpace(ownerType)
	if ownerType == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Owner type is required")
	}
	d.OwnerType = ownerType
	d.OwnerID = &ownerID
	d.MarkUpdated(actor)
	d.History.Append(actor, map[string]string{
		"ownerType": ownerType,
		"ownerId":   ownerID.String(),
	})
	return nil
}

// UpdateDescription records a new description for the document
func (d *Document) UpdateDescription(description string, actor shared.ActorRef) {
	if description == d.Description {
		return
	}
	d.Description = description
	d.MarkUpdated(actor)
	d.History.Append(actor, map[string]string{"description": description})
}

func formatSize(size int64) string {
	return strconv.FormatInt(size, 10)
}
