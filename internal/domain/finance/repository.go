package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// ReceiptRepository is the persistence contract for receipts.
// SumAmount aggregates the filtered set in the database (the amount column
// is cast to a numeric type inside the query, never in application code).
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *Receipt) error
	Save(ctx context.Context, receipt *Receipt) error
	FindByID(ctx context.Context, id uuid.UUID) (*Receipt, error)
	List(ctx context.Context, query shared.ListQuery) ([]Receipt, int64, error)
	SumAmount(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error)
}

// ExpenseRepository is the persistence contract for expenses
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	Save(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	List(ctx context.Context, query shared.ListQuery) ([]Expense, int64, error)
	SumAmount(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error)
}

// CategoryRepository is the persistence contract for income/expense categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Save(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, kind CategoryKind, query shared.ListQuery) ([]Category, int64, error)
	SumBudget(ctx context.Context, kind CategoryKind, query shared.ListQuery) (decimal.Decimal, error)
}

// FeeRepository is the persistence contract for member fees
type FeeRepository interface {
	Create(ctx context.Context, fee *Fee) error
	Save(ctx context.Context, fee *Fee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Fee, error)
	FindByUnionistYear(ctx context.Context, unionistID uuid.UUID, year int) (*Fee, error)
	List(ctx context.Context, query shared.ListQuery) ([]Fee, int64, error)
	SumFee(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error)
}
