package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActorRef identifies the user who performed a mutation
type ActorRef struct {
	ID    uuid.UUID `gorm:"type:uuid" json:"id"`
	Email string    `gorm:"type:varchar(255)" json:"email"`
}

// Auditable is the audit mixin composed into every entity record.
// Soft deletion keeps the row for audit; default listing excludes it.
type Auditable struct {
	CreatedBy ActorRef   `gorm:"embedded;embeddedPrefix:created_by_"`
	UpdatedBy ActorRef   `gorm:"embedded;embeddedPrefix:updated_by_"`
	DeletedBy ActorRef   `gorm:"embedded;embeddedPrefix:deleted_by_"`
	DeletedAt *time.Time `gorm:"index"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
}

// MarkCreated stamps the creating actor
func (a *Auditable) MarkCreated(actor ActorRef) {
	a.CreatedBy = actor
	a.UpdatedBy = actor
}

// MarkUpdated stamps the updating actor
func (a *Auditable) MarkUpdated(actor ActorRef) {
	a.UpdatedBy = actor
}

// MarkDeleted stamps the deleting actor and flags the record as removed.
// A second call is a no-op so the original deletion actor is preserved;
// it returns false when the record was already deleted.
func (a *Auditable) MarkDeleted(actor ActorRef, at time.Time) bool {
	if a.IsDeleted {
		return false
	}
	a.DeletedBy = actor
	a.DeletedAt = &at
	a.IsDeleted = true
	return true
}

// ChangeEntry is one snapshot in a record's change history
type ChangeEntry struct {
	Fields    map[string]string `json:"fields"`
	UpdatedAt time.Time         `json:"updatedAt"`
	UpdatedBy ActorRef          `json:"updatedBy"`
}

// History is the append-only change log attached to financial and document
// records. Entries are pushed in the same write as the field update and are
// never rewritten or truncated. Persisted as a JSON column.
type History []ChangeEntry

// Append pushes a new entry snapshotting the changed fields
func (h *History) Append(actor ActorRef, fields map[string]string) {
	*h = append(*h, ChangeEntry{
		Fields:    fields,
		UpdatedAt: time.Now(),
		UpdatedBy: actor,
	})
}

// Value implements driver.Valuer for GORM
func (h History) Value() (driver.Value, error) {
	if h == nil {
		h = History{}
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner for GORM
func (h *History) Scan(value interface{}) error {
	if value == nil {
		*h = History{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported history column type %T", value)
	}
}
