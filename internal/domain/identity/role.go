package identity

import (
	"strings"

	"github.com/unionadmin/backend/internal/domain/shared"
)

// Permission grants access to one action on one resource, e.g. "unionists"
// and "create". The claim string ("unionists:create") is what ends up in
// issued tokens.
type Permission struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(100);not null"`
	Resource string `gorm:"type:varchar(50);not null;uniqueIndex:idx_permission_resource_action"`
	Action   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_permission_resource_action"`
}

// TableName returns the table name for GORM
func (Permission) TableName() string {
	return "permissions"
}

// NewPermission creates a permission for a resource/action pair
func NewPermission(name, resource, action string) (*Permission, error) {
	resource = strings.TrimSpace(resource)
	action = strings.TrimSpace(action)
	if resource == "" || action == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Resource and action are required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = shared.TitleCase(resource + " " + action)
	}
	return &Permission{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Resource:   resource,
		Action:     action,
	}, nil
}

// Claim returns the "resource:action" string carried in JWT claims
func (p *Permission) Claim() string {
	return p.Resource + ":" + p.Action
}

// Role groups permissions for assignment to users
type Role struct {
	shared.BaseEntity
	shared.Auditable
	Name        string       `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string       `gorm:"type:text"`
	Permissions []Permission `gorm:"many2many:role_permissions"`
}

// TableName returns the table name for GORM
func (Role) TableName() string {
	return "roles"
}

// NewRole creates a role
func NewRole(name, description string, actor shared.ActorRef) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Role name is required")
	}
	r := &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}
	r.MarkCreated(actor)
	return r, nil
}

// Update patches the role's name and description
func (r *Role) Update(name, description string, actor shared.ActorRef) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Role name is required")
	}
	r.Name = name
	r.Description = description
	r.MarkUpdated(actor)
	return nil
}

// Claims returns every permission claim carried by this role
func (r *Role) Claims() []string {
	claims := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		claims = append(claims, p.Claim())
	}
	return claims
}

// HasPermission reports whether the role grants a resource/action pair
func (r *Role) HasPermission(resource, action string) bool {
	for _, p := range r.Permissions {
		if p.Resource == resource && p.Action == action {
			return true
		}
	}
	return false
}
