package union

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// DepartmentService handles department-related business operations
type DepartmentService struct {
	departmentRepo union.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo union.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// Create creates a new department. The DV code is allocated by the repository
// inside the insert transaction.
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest, actor shared.ActorRef) (*DepartmentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "department", "create")
	defer span.End()

	department, err := union.NewDepartment(req.Name, req.Description, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// GetByCode retrieves a department by business code
func (s *DepartmentService) GetByCode(ctx context.Context, code string) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// List retrieves departments matching the query with pagination
func (s *DepartmentService) List(ctx context.Context, query shared.ListQuery) ([]DepartmentResponse, int64, error) {
	departments, total, err := s.departmentRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToDepartmentResponses(departments), total, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest, actor shared.ActorRef) (*DepartmentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "department", "update",
		telemetry.WithAttribute(telemetry.SpanAttrDepartmentID, id))
	defer span.End()

	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := department.Update(req.Name, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// Delete soft-deletes a department
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "department", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrDepartmentID, id))
	defer span.End()

	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if !department.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.departmentRepo.Save(ctx, department)
}
