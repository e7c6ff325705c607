package union

import (
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
)

// =============================================================================
// Unionist DTOs
// =============================================================================

// CreateUnionistRequest represents a request to create a new unionist
type CreateUnionistRequest struct {
	FullName     string     `json:"fullName" binding:"required,min=1,max=255"`
	Gender       string     `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth  string     `json:"dateOfBirth" binding:"omitempty"`
	Email        string     `json:"email" binding:"omitempty,email,max=255"`
	Phone        string     `json:"phone" binding:"omitempty,max=20"`
	Address      string     `json:"address" binding:"omitempty,max=500"`
	JoinedDate   string     `json:"joinedDate" binding:"omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	PostID       *uuid.UUID `json:"postId"`
}

// UpdateUnionistRequest represents a request to update a unionist
type UpdateUnionistRequest struct {
	FullName     string     `json:"fullName" binding:"required,min=1,max=255"`
	Gender       string     `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth  string     `json:"dateOfBirth" binding:"omitempty"`
	Email        string     `json:"email" binding:"omitempty,email,max=255"`
	Phone        string     `json:"phone" binding:"omitempty,max=20"`
	Address      string     `json:"address" binding:"omitempty,max=500"`
	JoinedDate   string     `json:"joinedDate" binding:"omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	PostID       *uuid.UUID `json:"postId"`
}

// UnionistResponse represents a unionist in API responses
type UnionistResponse struct {
	ID           uuid.UUID           `json:"id"`
	Code         string              `json:"code"`
	FullName     string              `json:"fullName"`
	Gender       string              `json:"gender"`
	DateOfBirth  *string             `json:"dateOfBirth"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
	JoinedDate   *string             `json:"joinedDate"`
	DepartmentID *uuid.UUID          `json:"departmentId"`
	Department   *DepartmentResponse `json:"department,omitempty"`
	PostID       *uuid.UUID          `json:"postId"`
	Post         *PostResponse       `json:"post,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	CreatedBy    shared.ActorRef     `json:"createdBy"`
	UpdatedBy    shared.ActorRef     `json:"updatedBy"`
}

// ToUnionistResponse converts a domain unionist to a response DTO
func ToUnionistResponse(u *union.Unionist) UnionistResponse {
	resp := UnionistResponse{
		ID:           u.ID,
		Code:         u.Code,
		FullName:     u.FullName,
		Gender:       u.Gender,
		DateOfBirth:  formatDate(u.DateOfBirth),
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		JoinedDate:   formatDate(u.JoinedDate),
		DepartmentID: u.DepartmentID,
		PostID:       u.PostID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		CreatedBy:    u.CreatedBy,
		UpdatedBy:    u.UpdatedBy,
	}
	if u.Department != nil {
		dept := ToDepartmentResponse(u.Department)
		resp.Department = &dept
	}
	if u.Post != nil {
		post := ToPostResponse(u.Post)
		resp.Post = &post
	}
	return resp
}

// ToUnionistResponses converts a slice of domain unionists
func ToUnionistResponses(unionists []union.Unionist) []UnionistResponse {
	responses := make([]UnionistResponse, len(unionists))
	for i := range unionists {
		responses[i] = ToUnionistResponse(&unionists[i])
	}
	return responses
}

// =============================================================================
// Department DTOs
// =============================================================================

// CreateDepartmentRequest represents a request to create a new department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest represents a request to update a department
type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CreatedBy   shared.ActorRef `json:"createdBy"`
	UpdatedBy   shared.ActorRef `json:"updatedBy"`
}

// ToDepartmentResponse converts a domain department to a response DTO
func ToDepartmentResponse(d *union.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CreatedBy:   d.CreatedBy,
		UpdatedBy:   d.UpdatedBy,
	}
}

// ToDepartmentResponses converts a slice of domain departments
func ToDepartmentResponses(departments []union.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = ToDepartmentResponse(&departments[i])
	}
	return responses
}

// =============================================================================
// Post DTOs
// =============================================================================

// CreatePostRequest represents a request to create a new post
type CreatePostRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// UpdatePostRequest represents a request to update a post
type UpdatePostRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CreatedBy   shared.ActorRef `json:"createdBy"`
	UpdatedBy   shared.ActorRef `json:"updatedBy"`
}

// ToPostResponse converts a domain post to a response DTO
func ToPostResponse(p *union.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
	}
}

// ToPostResponses converts a slice of domain posts
func ToPostResponses(posts []union.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = ToPostResponse(&posts[i])
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

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
