package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// ExpenseService handles expense-related business operations
type ExpenseService struct {
	expenseRepo  finance.ExpenseRepository
	categoryRepo finance.CategoryRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, categoryRepo finance.CategoryRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new expense. The PC code is stamped from the document date
// at construction and never changes afterwards.
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest, actor shared.ActorRef) (*ExpenseResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "expense", "create",
		telemetry.WithAttribute(telemetry.SpanAttrAmount, req.Amount))
	defer span.End()

	documentDate, err := parseDocumentDate(req.DocumentDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(req.Title, req.Amount, documentDate, req.PayeeName, req.Description, req.CategoryID, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrDocumentCode, expense.Code)
	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses matching the query. The aggregate amount covers the
// whole filtered set, not just the returned page.
func (s *ExpenseService) List(ctx context.Context, query shared.ListQuery) (*ExpenseListResult, error) {
	expenses, total, err := s.expenseRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	totalAmount, err := s.expenseRepo.SumAmount(ctx, query)
	if err != nil {
		return nil, err
	}

	return &ExpenseListResult{
		Items:       ToExpenseResponses(expenses),
		Total:       total,
		TotalAmount: totalAmount,
	}, nil
}

// Update updates an expense. The code keeps the original document date stamp.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest, actor shared.ActorRef) (*ExpenseResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "expense", "update")
	defer span.End()

	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	documentDate, err := parseDocumentDate(req.DocumentDate)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Title, req.Amount, documentDate, req.PayeeName, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete soft-deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "expense", "delete")
	defer span.End()

	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if !expense.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.expenseRepo.Save(ctx, expense)
}

// checkCategory verifies an optional expense category reference
func (s *ExpenseService) checkCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category.Kind != finance.CategoryKindExpense {
		return shared.NewDomainError("VALIDATION_FAILED", "Category kind does not match the document type")
	}
	return nil
}
