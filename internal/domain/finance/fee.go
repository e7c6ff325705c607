package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
)

// Fee is a unionist's member fee for one year. Fee amount changes are
// tracked in the append-only history.
type Fee struct {
	shared.BaseEntity
	shared.Auditable
	UnionistID uuid.UUID      `gorm:"type:uuid;not null;index:idx_fee_unionist_year,unique,where:is_deleted = false"`
	Unionist   *union.Unionist `gorm:"foreignKey:UnionistID"`
	Year       int            `gorm:"not null;index:idx_fee_unionist_year,unique,where:is_deleted = false"`
	Fee        string         `gorm:"type:varchar(20);not null"`
	PaidDate   *time.Time     `gorm:""`
	History    shared.History `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Fee) TableName() string {
	return "fees"
}

// NewFee creates a fee record for a unionist and year
func NewFee(unionistID uuid.UUID, year int, amount string, actor shared.ActorRef) (*Fee, error) {
	if unionistID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Fee must reference a unionist")
	}
	if year < 1970 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Fee year must be 1970 or later")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	f := &Fee{
		BaseEntity: shared.NewBaseEntity(),
		UnionistID: unionistID,
		Year:       year,
		Fee:        amount,
	}
	f.MarkCreated(actor)
	f.History.Append(actor, map[string]string{"fee": amount})
	return f, nil
}

// UpdateFee changes the fee amount, appending exactly one history entry in
// the same operation
func (f *Fee) UpdateFee(amount string, actor shared.ActorRef) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount == f.Fee {
		return nil
	}
	f.Fee = amount
	f.UpdatedAt = time.Now()
	f.MarkUpdated(actor)
	f.History.Append(actor, map[string]string{"fee": amount})
	return nil
}

// MarkPaid stamps the payment date
func (f *Fee) MarkPaid(paidAt time.Time, actor shared.ActorRef) error {
	if err := ValidateDocumentDate(paidAt); err != nil {
		return err
	}
	f.PaidDate = &paidAt
	f.UpdatedAt = time.Now()
	f.MarkUpdated(actor)
	f.History.Append(actor, map[string]string{"paidDate": paidAt.Format("2006-01-02")})
	return nil
}
