package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// =============================================================================
// Receipt DTOs
// =============================================================================

// CreateReceiptRequest represents a request to create a new receipt
type CreateReceiptRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Amount       string     `json:"amount" binding:"required"`
	DocumentDate string     `json:"documentDate" binding:"required"`
	PayerName    string     `json:"payerName" binding:"omitempty,max=255"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"categoryId"`
}

// UpdateReceiptRequest represents a request to update a receipt
type UpdateReceiptRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Amount       string `json:"amount" binding:"required"`
	DocumentDate string `json:"documentDate" binding:"required"`
	PayerName    string `json:"payerName" binding:"omitempty,max=255"`
	Description  string `json:"description"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	Title        string            `json:"title"`
	Amount       string            `json:"amount"`
	DocumentDate string            `json:"documentDate"`
	PayerName    string            `json:"payerName"`
	Description  string            `json:"description"`
	CategoryID   *uuid.UUID        `json:"categoryId"`
	Category     *CategoryResponse `json:"category,omitempty"`
	History      shared.History    `json:"history"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	CreatedBy    shared.ActorRef   `json:"createdBy"`
	UpdatedBy    shared.ActorRef   `json:"updatedBy"`
}

// ReceiptListResult bundles one page of receipts with the aggregate of the
// whole filtered set
type ReceiptListResult struct {
	Items       []ReceiptResponse
	Total       int64
	TotalAmount decimal.Decimal
}

// ToReceiptResponse converts a domain receipt to a response DTO
func ToReceiptResponse(r *finance.Receipt) ReceiptResponse {
	resp := ReceiptResponse{
		ID:           r.ID,
		Code:         r.Code,
		Title:        r.Title,
		Amount:       r.Amount,
		DocumentDate: r.DocumentDate.Format(dateLayout),
		PayerName:    r.PayerName,
		Description:  r.Description,
		CategoryID:   r.CategoryID,
		History:      r.History,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		CreatedBy:    r.CreatedBy,
		UpdatedBy:    r.UpdatedBy,
	}
	if r.Category != nil {
		category := ToCategoryResponse(r.Category)
		resp.Category = &category
	}
	return resp
}

// ToReceiptResponses converts a slice of domain receipts
func ToReceiptResponses(receipts []finance.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = ToReceiptResponse(&receipts[i])
	}
	return responses
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest represents a request to create a new expense
type CreateExpenseRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Amount       string     `json:"amount" binding:"required"`
	DocumentDate string     `json:"documentDate" binding:"required"`
	PayeeName    string     `json:"payeeName" binding:"omitempty,max=255"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"categoryId"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Amount       string `json:"amount" binding:"required"`
	DocumentDate string `json:"documentDate" binding:"required"`
	PayeeName    string `json:"payeeName" binding:"omitempty,max=255"`
	Description  string `json:"description"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	Title        string            `json:"title"`
	Amount       string            `json:"amount"`
	DocumentDate string            `json:"documentDate"`
	PayeeName    string            `json:"payeeName"`
	Description  string            `json:"description"`
	CategoryID   *uuid.UUID        `json:"categoryId"`
	Category     *CategoryResponse `json:"category,omitempty"`
	History      shared.History    `json:"history"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	CreatedBy    shared.ActorRef   `json:"createdBy"`
	UpdatedBy    shared.ActorRef   `json:"updatedBy"`
}

// ExpenseListResult bundles one page of expenses with the aggregate of the
// whole filtered set
type ExpenseListResult struct {
	Items       []ExpenseResponse
	Total       int64
	TotalAmount decimal.Decimal
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:           e.ID,
		Code:         e.Code,
		Title:        e.Title,
		Amount:       e.Amount,
		DocumentDate: e.DocumentDate.Format(dateLayout),
		PayeeName:    e.PayeeName,
		Description:  e.Description,
		CategoryID:   e.CategoryID,
		History:      e.History,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		CreatedBy:    e.CreatedBy,
		UpdatedBy:    e.UpdatedBy,
	}
	if e.Category != nil {
		category := ToCategoryResponse(e.Category)
		resp.Category = &category
	}
	return resp
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Year        int    `json:"year" binding:"required,min=1970"`
	Budget      string `json:"budget" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Year        int    `json:"year" binding:"required,min=1970"`
	Budget      string `json:"budget" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Budget      string          `json:"budget"`
	Description string          `json:"description"`
	History     shared.History  `json:"history"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CreatedBy   shared.ActorRef `json:"createdBy"`
	UpdatedBy   shared.ActorRef `json:"updatedBy"`
}

// CategoryListResult bundles one page of categories with the aggregate
// planned budget of the whole filtered set
type CategoryListResult struct {
	Items       []CategoryResponse
	Total       int64
	TotalBudget decimal.Decimal
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *finance.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Code:        c.Code,
		Kind:        string(c.Kind),
		Name:        c.Name,
		Year:        c.Year,
		Budget:      c.Budget,
		Description: c.Description,
		History:     c.History,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []finance.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Fee DTOs
// =============================================================================

// CreateFeeRequest represents a request to record a unionist's yearly fee
type CreateFeeRequest struct {
	UnionistID uuid.UUID `json:"unionistId" binding:"required"`
	Year       int       `json:"year" binding:"required,min=1970"`
	Fee        string    `json:"fee" binding:"required"`
}

// UpdateFeeRequest represents a request to change a fee amount
type UpdateFeeRequest struct {
	Fee string `json:"fee" binding:"required"`
}

// MarkFeePaidRequest represents a request to stamp the payment date
type MarkFeePaidRequest struct {
	PaidDate string `json:"paidDate" binding:"required"`
}

// FeeResponse represents a fee in API responses
type FeeResponse struct {
	ID         uuid.UUID       `json:"id"`
	UnionistID uuid.UUID       `json:"unionistId"`
	Year       int             `json:"year"`
	Fee        string          `json:"fee"`
	PaidDate   *string         `json:"paidDate"`
	History    shared.History  `json:"history"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	CreatedBy  shared.ActorRef `json:"createdBy"`
	UpdatedBy  shared.ActorRef `json:"updatedBy"`
}

// FeeListResult bundles one page of fees with the aggregate of the whole
// filtered set
type FeeListResult struct {
	Items    []FeeResponse
	Total    int64
	TotalFee decimal.Decimal
}

// ToFeeResponse converts a domain fee to a response DTO
func ToFeeResponse(f *finance.Fee) FeeResponse {
	resp := FeeResponse{
		ID:         f.ID,
		UnionistID: f.UnionistID,
		Year:       f.Year,
		Fee:        f.Fee,
		History:    f.History,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
		CreatedBy:  f.CreatedBy,
		UpdatedBy:  f.UpdatedBy,
	}
	if f.PaidDate != nil {
		paid := f.PaidDate.Format(dateLayout)
		resp.PaidDate = &paid
	}
	return resp
}

// ToFeeResponses converts a slice of domain fees
func ToFeeResponses(fees []finance.Fee) []FeeResponse {
	responses := make([]FeeResponse, len(fees))
	for i := range fees {
		responses[i] = ToFeeResponse(&fees[i])
	}
	return responses
}

// =============================================================================
// Helpers
// =============================================================================

const dateLayout = "2006-01-02"

// parseDocumentDate parses a required yyyy-MM-dd date string
func parseDocumentDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, shared.NewDomainError("VALIDATION_FAILED", "Document date must use the yyyy-MM-dd format")
	}
	return t, nil
}
