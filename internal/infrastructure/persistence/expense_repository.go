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

var expenseColumns = EntityColumns{
	Columns: map[string]string{
		"code":         "code",
		"title":        "title",
		"amount":       "amount",
		"documentDate": "document_date",
		"payeeName":    "payee_name",
		"description":  "description",
		"categoryId":   "category_id",
	},
	Relations: map[string]string{
		"category": "Category",
	},
	DefaultSort: "document_date DESC",
}

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Create inserts a new expense
func (r *GormExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Save persists changes to an existing expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	result := r.db.WithContext(ctx).Save(expense)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an expense by ID, excluding soft-deleted records
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&expense, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// List returns a page of expenses matching the query
func (r *GormExpenseRepository) List(ctx context.Context, query shared.ListQuery) ([]finance.Expense, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), expenseColumns, query, &finance.Expense{})
	if err != nil {
		return nil, 0, err
	}
	var expenses []finance.Expense
	if err := db.Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// SumAmount totals the amount column over the filtered set
func (r *GormExpenseRepository) SumAmount(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error) {
	return sumColumn(ApplyFilter(r.db.WithContext(ctx).Model(&finance.Expense{}), expenseColumns, query.Conditions), "amount")
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
