package union

import (
	"strings"
	"time"

	"github.com/unionadmin/backend/internal/domain/shared"
)

// Post is an organizational position a unionist can hold
type Post struct {
	shared.BaseEntity
	shared.Auditable
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// NewPost creates a post
func NewPost(name, description string, actor shared.ActorRef) (*Post, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Post name is required")
	}
	p := &Post{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}
	p.MarkCreated(actor)
	return p, nil
}

// Update patches the post's mutable fields
func (p *Post) Update(name, description string, actor shared.ActorRef) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Post name is required")
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.MarkUpdated(actor)
	return nil
}
