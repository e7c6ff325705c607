package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// User is a member account (code STU#####). Users authenticate with email
// and password and carry a role for permission checks.
type User struct {
	shared.BaseEntity
	shared.Auditable
	Code         string     `gorm:"type:varchar(10);uniqueIndex"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(255);not null"`
	Gender       string     `gorm:"type:varchar(10)"`
	DateOfBirth  *time.Time `gorm:""`
	Phone        string     `gorm:"type:varchar(20)"`
	Address      string     `gorm:"type:text"`
	RoleID       *uuid.UUID `gorm:"type:uuid;index"`
	Role         *Role      `gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password. The STU code is
// allocated by the repository on first insert.
func NewUser(email, password, fullName string, actor shared.ActorRef) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "A valid email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Password must be at least 8 characters")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Full name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	u.MarkCreated(actor)
	return u, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash
func (u *User) ChangePassword(password string, actor shared.ActorRef) error {
	if len(password) < 8 {
		return shared.NewDomainError("VALIDATION_FAILED", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
	return nil
}

// UpdateProfile patches the user's profile fields
func (u *User) UpdateProfile(fullName, gender, phone, address string, dateOfBirth *time.Time, actor shared.ActorRef) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Full name is required")
	}
	u.FullName = fullName
	u.Gender = gender
	u.Phone = phone
	u.Address = address
	u.DateOfBirth = dateOfBirth
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
	return nil
}

// AssignRole sets the user's role (nil clears it)
func (u *User) AssignRole(roleID *uuid.UUID, actor shared.ActorRef) {
	u.RoleID = roleID
	u.Role = nil
	u.UpdatedAt = time.Now()
	u.MarkUpdated(actor)
}

// ActorRef returns the audit reference for actions performed by this user
func (u *User) ActorRef() shared.ActorRef {
	return shared.ActorRef{ID: u.ID, Email: u.Email}
}
