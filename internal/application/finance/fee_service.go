package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// FeeService handles member fee operations. A unionist has at most one fee
// record per year; the unique index in storage is the final guard.
type FeeService struct {
	feeRepo      finance.FeeRepository
	unionistRepo union.UnionistRepository
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo finance.FeeRepository, unionistRepo union.UnionistRepository) *FeeService {
	return &FeeService{
		feeRepo:      feeRepo,
		unionistRepo: unionistRepo,
	}
}

// Create records a unionist's fee for one year
func (s *FeeService) Create(ctx context.Context, req CreateFeeRequest, actor shared.ActorRef) (*FeeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "fee", "create",
		telemetry.WithAttribute(telemetry.SpanAttrUnionistID, req.UnionistID),
		telemetry.WithAttribute(telemetry.SpanAttrYear, req.Year))
	defer span.End()

	if _, err := s.unionistRepo.FindByID(ctx, req.UnionistID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	fee, err := finance.NewFee(req.UnionistID, req.Year, req.Fee, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// GetByID retrieves a fee by ID
func (s *FeeService) GetByID(ctx context.Context, id uuid.UUID) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// GetByUnionistYear retrieves the fee for a unionist and year
func (s *FeeService) GetByUnionistYear(ctx context.Context, unionistID uuid.UUID, year int) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByUnionistYear(ctx, unionistID, year)
	if err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// List retrieves fees matching the query. The aggregate fee covers the whole
// filtered set, not just the returned page.
func (s *FeeService) List(ctx context.Context, query shared.ListQuery) (*FeeListResult, error) {
	fees, total, err := s.feeRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	totalFee, err := s.feeRepo.SumFee(ctx, query)
	if err != nil {
		return nil, err
	}

	return &FeeListResult{
		Items:    ToFeeResponses(fees),
		Total:    total,
		TotalFee: totalFee,
	}, nil
}

// Update changes the fee amount, appending a history entry when it differs
func (s *FeeService) Update(ctx context.Context, id uuid.UUID, req UpdateFeeRequest, actor shared.ActorRef) (*FeeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "fee", "update")
	defer span.End()

	fee, err := s.feeRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := fee.UpdateFee(req.Fee, actor); err != nil {
		return nil, err
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// MarkPaid stamps the payment date on a fee
func (s *FeeService) MarkPaid(ctx context.Context, id uuid.UUID, req MarkFeePaidRequest, actor shared.ActorRef) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	paidDate, err := parseDocumentDate(req.PaidDate)
	if err != nil {
		return nil, err
	}

	if err := fee.MarkPaid(paidDate, actor); err != nil {
		return nil, err
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// Delete soft-deletes a fee record
func (s *FeeService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	fee, err := s.feeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !fee.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.feeRepo.Save(ctx, fee)
}
