package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// ReceiptService handles receipt-related business operations
type ReceiptService struct {
	receiptRepo  finance.ReceiptRepository
	categoryRepo finance.CategoryRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(receiptRepo finance.ReceiptRepository, categoryRepo finance.CategoryRepository) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new receipt. The PT code is stamped from the document date
// at construction and never changes afterwards.
func (s *ReceiptService) Create(ctx context.Context, req CreateReceiptRequest, actor shared.ActorRef) (*ReceiptResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "create",
		telemetry.WithAttribute(telemetry.SpanAttrAmount, req.Amount))
	defer span.End()

	documentDate, err := parseDocumentDate(req.DocumentDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, req.CategoryID, finance.CategoryKindIncome); err != nil {
		return nil, err
	}

	receipt, err := finance.NewReceipt(req.Title, req.Amount, documentDate, req.PayerName, req.Description, req.CategoryID, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrDocumentCode, receipt.Code)
	response := ToReceiptResponse(receipt)
	return &response, nil
}

// GetByID retrieves a receipt by ID
func (s *ReceiptService) GetByID(ctx context.Context, id uuid.UUID) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// List retrieves receipts matching the query. The aggregate amount covers the
// whole filtered set, not just the returned page.
func (s *ReceiptService) List(ctx context.Context, query shared.ListQuery) (*ReceiptListResult, error) {
	receipts, total, err := s.receiptRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	totalAmount, err := s.receiptRepo.SumAmount(ctx, query)
	if err != nil {
		return nil, err
	}

	return &ReceiptListResult{
		Items:       ToReceiptResponses(receipts),
		Total:       total,
		TotalAmount: totalAmount,
	}, nil
}

// Update updates a receipt. The code keeps the original document date stamp.
func (s *ReceiptService) Update(ctx context.Context, id uuid.UUID, req UpdateReceiptRequest, actor shared.ActorRef) (*ReceiptResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "update")
	defer span.End()

	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	documentDate, err := parseDocumentDate(req.DocumentDate)
	if err != nil {
		return nil, err
	}

	if err := receipt.Update(req.Title, req.Amount, documentDate, req.PayerName, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// Delete soft-deletes a receipt
func (s *ReceiptService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "delete")
	defer span.End()

	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if !receipt.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.receiptRepo.Save(ctx, receipt)
}

// checkCategory verifies an optional category reference and its kind
func (s *ReceiptService) checkCategory(ctx context.Context, categoryID *uuid.UUID, kind finance.CategoryKind) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category.Kind != kind {
		return shared.NewDomainError("VALIDATION_FAILED", "Category kind does not match the document type")
	}
	return nil
}
