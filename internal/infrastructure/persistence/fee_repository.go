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

var feeColumns = EntityColumns{
	Columns: map[string]string{
		"unionistId": "unionist_id",
		"year":       "year",
		"fee":        "fee",
		"paidDate":   "paid_date",
	},
	Relations: map[string]string{
		"unionist": "Unionist",
	},
	DefaultSort: "year DESC, created_at DESC",
}

// GormFeeRepository implements FeeRepository using GORM
type GormFeeRepository struct {
	db *gorm.DB
}

// NewGormFeeRepository creates a new GormFeeRepository
func NewGormFeeRepository(db *gorm.DB) *GormFeeRepository {
	return &GormFeeRepository{db: db}
}

// Create inserts a new fee record. The unique (unionist_id, year) index is
// scoped to live rows, so it rejects a second record for the same member and
// year while a soft-deleted record can be replaced.
func (r *GormFeeRepository) Create(ctx context.Context, fee *finance.Fee) error {
	err := r.db.WithContext(ctx).Create(fee).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Save persists changes to an existing fee record
func (r *GormFeeRepository) Save(ctx context.Context, fee *finance.Fee) error {
	result := r.db.WithContext(ctx).Save(fee)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a fee record by ID, excluding soft-deleted records
func (r *GormFeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Fee, error) {
	var fee finance.Fee
	err := r.db.WithContext(ctx).
		Preload("Unionist").
		First(&fee, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fee, nil
}

// FindByUnionistYear finds the fee record for one member and one year
func (r *GormFeeRepository) FindByUnionistYear(ctx context.Context, unionistID uuid.UUID, year int) (*finance.Fee, error) {
	var fee finance.Fee
	err := r.db.WithContext(ctx).
		First(&fee, "unionist_id = ? AND year = ? AND is_deleted = ?", unionistID, year, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fee, nil
}

// List returns a page of fee records matching the query
func (r *GormFeeRepository) List(ctx context.Context, query shared.ListQuery) ([]finance.Fee, int64, error) {
	db, total, err := ApplyListQuery(r.db.WithContext(ctx), feeColumns, query, &finance.Fee{})
	if err != nil {
		return nil, 0, err
	}
	var fees []finance.Fee
	if err := db.Find(&fees).Error; err != nil {
		return nil, 0, err
	}
	return fees, total, nil
}

// SumFee totals the fee column over the filtered set
func (r *GormFeeRepository) SumFee(ctx context.Context, query shared.ListQuery) (decimal.Decimal, error) {
	return sumColumn(ApplyFilter(r.db.WithContext(ctx).Model(&finance.Fee{}), feeColumns, query.Conditions), "fee")
}

var _ finance.FeeRepository = (*GormFeeRepository)(nil)
