package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var receiptColumns = EntityColumns{
	Columns: map[string]string{
		"code":         "code",
		"title":        "title",
		"amount":       "amount",
		"documentDate": "document_date",
		"payerName":    "payer_name",
		"description":  "description",
		"categoryId":   "category_id",
	},
	Relations: map[string]string{
		"category": "Category",
	},
	DefaultSort: "document_date DESC",
}

// GormReceiptRepository implements ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Create inserts a new receipt. The PT code is stamped from the document
// date at construction, so no allocation is needed here.
func (r *GormReceiptRepository) Create(ctx context.Context, receipt *finance.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// Save persists changes to an existing receipt
func (r *GormReceiptRepository) Save(ctx context.Context, receipt *finance.Receipt) error {
	result := r.db.WithContext(ctx).Save(receipt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a receipt by ID, excluding soft-deleted records
func (r *GormReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Receipt, error) {
	var receipt finance.Receipt
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&receipt, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

// List returns a page of receipts matching the query
func (r *GormReceiptRepository) List(ctx context.Context, query shared.ListQuery) ([]finance.Receipt, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), receiptColumns, query, &finance.Receipt{})
	if err != nil {
		return nil, 0, err
	}
	var receipts []finance.Receipt
	if err := db.Find(&receipts).Error; err != nil {
		return nil, 0, err
	}
	return receipts, total, nil
}

// SumAmount totals the amount column over the filtered set. The cast and the
// sum both run in the database.
func (r *GormReceiptRepository) SumAmount(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error) {
	return sumColumn(ApplyFilter(r.db.WithContext(ctx).Model(&finance.Receipt{}), receiptColumns, query.Conditions), "amount")
}

var _ finance.ReceiptRepository = (*GormReceiptRepository)(nil)

// sumColumn runs SELECT COALESCE(SUM(CAST(col AS DECIMAL)), 0) on the
// prepared query and parses the result
func sumColumn(db *gorm.DB, column string) (decimal.Decimal, error) {
	var raw string
	err := db.Select("COALESCE(SUM(CAST(" + column + " AS DECIMAL)), 0)").Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
