package union

import (
	"strings"
	"time"

	"github.com/unionadmin/backend/internal/domain/shared"
)

// Department is an organizational unit of the union (code DV##)
type Department struct {
	shared.BaseEntity
	shared.Auditable
	Code        string `gorm:"type:varchar(10);uniqueIndex"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Department) TableName() string {
	return "departments"
}

// NewDepartment creates a department. The business code is allocated by the
// repository on first insert unless the caller supplies one.
func NewDepartment(name, description string, actor shared.ActorRef) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Department name is required")
	}
	d := &Department{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}
	d.MarkCreated(actor)
	return d, nil
}

// Update patches the department's mutable fields
func (d *Department) Update(name, description string, actor shared.ActorRef) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Department name is required")
	}
	d.Name = name
	d.Description = description
	d.UpdatedAt = time.Now()
	d.MarkUpdated(actor)
	return nil
}
