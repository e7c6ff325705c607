package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// CategoryService handles income and expense category operations. Every
// method is pinned to one kind so the two catalogs never mix.
type CategoryService struct {
	categoryRepo finance.CategoryRepository
	kind         finance.CategoryKind
}

// NewIncomeCategoryService creates a CategoryService scoped to income
// categories (DMT codes)
func NewIncomeCategoryService(categoryRepo finance.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, kind: finance.CategoryKindIncome}
}

// NewExpenseCategoryService creates a CategoryService scoped to expense
// categories (DMC codes)
func NewExpenseCategoryService(categoryRepo finance.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, kind: finance.CategoryKindExpense}
}

// Kind returns the category kind this service is scoped to
func (s *CategoryService) Kind() finance.CategoryKind {
	return s.kind
}

// Create creates a new category of the service's kind
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest, actor shared.ActorRef) (*CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "category", "create",
		telemetry.WithAttribute(telemetry.SpanAttrYear, req.Year))
	defer span.End()

	category, err := finance.NewCategory(s.kind, req.Name, req.Year, req.Budget, req.Description, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID. A category of the other kind is treated
// as absent.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.findOwnKind(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves categories of the service's kind. The aggregate budget
// covers the whole filtered set, not just the returned page.
func (s *CategoryService) List(ctx context.Context, query shared.ListQuery) (*CategoryListResult, error) {
	categories, total, err := s.categoryRepo.List(ctx, s.kind, query)
	if err != nil {
		return nil, err
	}

	totalBudget, err := s.categoryRepo.SumBudget(ctx, s.kind, query)
	if err != nil {
		return nil, err
	}

	return &CategoryListResult{
		Items:       ToCategoryResponses(categories),
		Total:       total,
		TotalBudget: totalBudget,
	}, nil
}

// Update updates a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest, actor shared.ActorRef) (*CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "category", "update",
		telemetry.WithAttribute(telemetry.SpanAttrCategoryID, id))
	defer span.End()

	category, err := s.findOwnKind(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := category.Update(req.Name, req.Year, req.Budget, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete soft-deletes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "category", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrCategoryID, id))
	defer span.End()

	category, err := s.findOwnKind(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if !category.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.categoryRepo.Save(ctx, category)
}

func (s *CategoryService) findOwnKind(ctx context.Context, id uuid.UUID) (*finance.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.Kind != s.kind {
		return nil, shared.ErrNotFound
	}
	return category, nil
}
