package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh attempt
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string       `json:"accessToken"`
	RefreshToken          string       `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time    `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
	TokenType             string       `json:"tokenType"`
	User                  UserResponse `json:"user"`
}

// =============================================================================
// User DTOs
// =============================================================================

// CreateUserRequest represents a request to register a member account
type CreateUserRequest struct {
	Email       string     `json:"email" binding:"required,email,max=255"`
	Password    string     `json:"password" binding:"required,min=8"`
	FullName    string     `json:"fullName" binding:"required,min=1,max=255"`
	Gender      string     `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string     `json:"dateOfBirth" binding:"omitempty"`
	Phone       string     `json:"phone" binding:"omitempty,max=20"`
	Address     string     `json:"address" binding:"omitempty,max=500"`
	RoleID      *uuid.UUID `json:"roleId"`
}

// UpdateUserRequest represents a request to update a member profile
type UpdateUserRequest struct {
	FullName    string `json:"fullName" binding:"required,min=1,max=255"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Address     string `json:"address" binding:"omitempty,max=500"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AssignRoleRequest represents a role assignment (null clears the role)
type AssignRoleRequest struct {
	RoleID *uuid.UUID `json:"roleId"`
}

// UserResponse represents a member account in API responses
type UserResponse struct {
	ID          uuid.UUID     `json:"id"`
	Code        string        `json:"code"`
	Email       string        `json:"email"`
	FullName    string        `json:"fullName"`
	Gender      string        `json:"gender"`
	DateOfBirth *string       `json:"dateOfBirth"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	RoleID      *uuid.UUID    `json:"roleId"`
	Role        *RoleResponse `json:"role,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ToUserResponse converts a domain user to a response DTO. The password hash
// never leaves the domain layer.
func ToUserResponse(u *identity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Code:      u.Code,
		Email:     u.Email,
		FullName:  u.FullName,
		Gender:    u.Gender,
		Phone:     u.Phone,
		Address:   u.Address,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	if u.Role != nil {
		role := ToRoleResponse(u.Role)
		resp.Role = &role
	}
	return resp
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// =============================================================================
// Role and Permission DTOs
// =============================================================================

// CreateRoleRequest represents a request to create a role
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateRoleRequest represents a request to update a role
type UpdateRoleRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ReplacePermissionsRequest replaces a role's permission set wholesale
type ReplacePermissionsRequest struct {
	PermissionIDs []uuid.UUID `json:"permissionIds" binding:"required"`
}

// CreatePermissionRequest represents a request to register a permission
type CreatePermissionRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Resource string `json:"resource" binding:"required,min=1,max=50"`
	Action   string `json:"action" binding:"required,min=1,max=50"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// PermissionResponse represents a permission in API responses
type PermissionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	Claim    string    `json:"claim"`
}

// ToRoleResponse converts a domain role to a response DTO
func ToRoleResponse(r *identity.Role) RoleResponse {
	permissions := make([]PermissionResponse, len(r.Permissions))
	for i := range r.Permissions {
		permissions[i] = ToPermissionResponse(&r.Permissions[i])
	}
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRoleResponses converts a slice of domain roles
func ToRoleResponses(roles []identity.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = ToRoleResponse(&roles[i])
	}
	return responses
}

// ToPermissionResponse converts a domain permission to a response DTO
func ToPermissionResponse(p *identity.Permission) PermissionResponse {
	return PermissionResponse{
		ID:       p.ID,
		Name:     p.Name,
		Resource: p.Resource,
		Action:   p.Action,
		Claim:    p.Claim(),
	}
}

// ToPermissionResponses converts a slice of domain permissions
func ToPermissionResponses(permissions []identity.Permission) []PermissionResponse {
	responses := make([]PermissionResponse, len(permissions))
	for i := range permissions {
		responses[i] = ToPermissionResponse(&permissions[i])
	}
	return responses
}

// =============================================================================
// Helpers
// =============================================================================

const dateLayout = "2006-01-02"

// parseDate parses an optional yyyy-MM-dd date string
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Date must use the yyyy-MM-dd format")
	}
	return &t, nil
}
