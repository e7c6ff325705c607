package union

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// Unionist is a union member record (code CD#####)
type Unionist struct {
	shared.BaseEntity
	shared.Auditable
	Code         string      `gorm:"type:varchar(10);uniqueIndex"`
	FullName     string      `gorm:"type:varchar(255);not null"`
	Gender       string      `gorm:"type:varchar(10)"`
	DateOfBirth  *time.Time  `gorm:""`
	Email        string      `gorm:"type:varchar(255)"`
	Phone        string      `gorm:"type:varchar(20)"`
	Address      string      `gorm:"type:text"`
	JoinedDate   *time.Time  `gorm:""`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index"`
	Department   *Department `gorm:"foreignKey:DepartmentID"`
	PostID       *uuid.UUID  `gorm:"type:uuid;index"`
	Post         *Post       `gorm:"foreignKey:PostID"`
}

// TableName returns the table name for GORM
func (Unionist) TableName() string {
	return "unionists"
}

// NewUnionist creates a unionist record. The CD code is allocated by the
// repository on first insert unless the caller supplies one.
func NewUnionist(fullName, gender, email, phone, address string, actor shared.ActorRef) (*Unionist, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Unionist full name is required")
	}
	u := &Unionist{
		BaseEntity: shared.NewBaseEntity(),
		FullName:   fullName,
		Gender:     gender,
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Phone:      phone,
		Address:    address,
	}
	u.MarkCreated(actor)
	return u, nil
}

// Update patches the unionist's mutable fields. The business code is
// assigned once at creation and is never touched here.
func (u *Unionist) Update(fullName, gender, email, phone, address string, actor shared.ActorRef) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Unionist full name is required")
	}
	u.FullName = fullName
	u.Gender = gender
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Phone = phone
	u.Address = address
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
	return nil
}

// AssignDepartment moves the unionist to a department (nil detaches)
func (u *Unionist) AssignDepartment(departmentID *uuid.UUID, actor shared.ActorRef) {
	u.DepartmentID = departmentID
	u.Department = nil
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
}

// AssignPost sets the unionist's organizational position (nil detaches)
func (u *Unionist) AssignPost(postID *uuid.UUID, actor shared.ActorRef) {
	u.PostID = postID
	u.Post = nil
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
}
