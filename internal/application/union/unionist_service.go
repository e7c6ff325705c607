package union

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// UnionistService handles unionist-related business operations
type UnionistService struct {
	unionistRepo   union.UnionistRepository
	departmentRepo union.DepartmentRepository
	postRepo       union.PostRepository
}

// NewUnionistService creates a new UnionistService
func NewUnionistService(unionistRepo union.UnionistRepository, departmentRepo union.DepartmentRepository, postRepo union.PostRepository) *UnionistService {
	return &UnionistService{
		unionistRepo:   unionistRepo,
		departmentRepo: departmentRepo,
		postRepo:       postRepo,
	}
}

// Create creates a new unionist. The CD code is allocated by the repository
// inside the insert transaction.
func (s *UnionistService) Create(ctx context.Context, req CreateUnionistRequest, actor shared.ActorRef) (*UnionistResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unionist", "create")
	defer span.End()

	unionist, err := union.NewUnionist(req.FullName, req.Gender, req.Email, req.Phone, req.Address, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	unionist.DateOfBirth = dateOfBirth

	joinedDate, err := parseDate(req.JoinedDate)
	if err != nil {
		return nil, err
	}
	unionist.JoinedDate = joinedDate

	if err := s.assignReferences(ctx, unionist, req.DepartmentID, req.PostID, actor); err != nil {
		return nil, err
	}

	if err := s.unionistRepo.Create(ctx, unionist); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrUnionistCode, unionist.Code)
	response := ToUnionistResponse(unionist)
	return &response, nil
}

// GetByID retrieves a unionist by ID
func (s *UnionistService) GetByID(ctx context.Context, id uuid.UUID) (*UnionistResponse, error) {
	unionist, err := s.unionistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUnionistResponse(unionist)
	return &response, nil
}

// GetByCode retrieves a unionist by business code
func (s *UnionistService) GetByCode(ctx context.Context, code string) (*UnionistResponse, error) {
	unionist, err := s.unionistRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToUnionistResponse(unionist)
	return &response, nil
}

// List retrieves unionists matching the query with pagination
func (s *UnionistService) List(ctx context.Context, query shared.ListQuery) ([]UnionistResponse, int64, error) {
	unionists, total, err := s.unionistRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToUnionistResponses(unionists), total, nil
}

// Update updates a unionist. The business code is never touched.
func (s *UnionistService) Update(ctx context.Context, id uuid.UUID, req UpdateUnionistRequest, actor shared.ActorRef) (*UnionistResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unionist", "update",
		telemetry.WithAttribute(telemetry.SpanAttrUnionistID, id))
	defer span.End()

	unionist, err := s.unionistRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := unionist.Update(req.FullName, req.Gender, req.Email, req.Phone, req.Address, actor); err != nil {
		return nil, err
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	unionist.DateOfBirth = dateOfBirth

	joinedDate, err := parseDate(req.JoinedDate)
	if err != nil {
		return nil, err
	}
	unionist.JoinedDate = joinedDate

	if err := s.assignReferences(ctx, unionist, req.DepartmentID, req.PostID, actor); err != nil {
		return nil, err
	}

	if err := s.unionistRepo.Save(ctx, unionist); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// Reload so the response carries the refreshed associations
	unionist, err = s.unionistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUnionistResponse(unionist)
	return &response, nil
}

// Delete soft-deletes a unionist. The row is kept for audit and the business
// code is never reissued.
func (s *UnionistService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "unionist", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrUnionistID, id))
	defer span.End()

	unionist, err := s.unionistRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if !unionist.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.unionistRepo.Save(ctx, unionist)
}

// assignReferences validates and sets the department and post links
func (s *UnionistService) assignReferences(ctx context.Context, unionist *union.Unionist, departmentID, postID *uuid.UUID, actor shared.ActorRef) error {
	if departmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *departmentID); err != nil {
			return err
		}
	}
	unionist.AssignDepartment(departmentID, actor)

	if postID != nil {
		if _, err := s.postRepo.FindByID(ctx, *postID); err != nil {
			return err
		}
	}
	unionist.AssignPost(postID, actor)
	return nil
}
