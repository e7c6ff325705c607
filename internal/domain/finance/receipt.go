package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// Receipt records money received by the union (code PT + receipt date)
type Receipt struct {
	shared.BaseEntity
	shared.Auditable
	Code         string         `gorm:"type:varchar(20);index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Amount       string         `gorm:"type:varchar(20);not null"`
	DocumentDate time.Time      `gorm:"not null;index"`
	PayerName    string         `gorm:"type:varchar(255)"`
	Description  string         `gorm:"type:text"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index"`
	Category     *Category      `gorm:"foreignKey:CategoryID"`
	History      shared.History `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Receipt) TableName() string {
	return "receipts"
}

// NewReceipt creates a receipt. Validation failures abort the creation
// entirely; nothing may be persisted for a rejected receipt.
func NewReceipt(title, amount string, documentDate time.Time, payerName, description string, categoryID *uuid.UUID, actor shared.ActorRef) (*Receipt, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Receipt title is required")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateDocumentDate(documentDate); err != nil {
		return nil, err
	}

	r := &Receipt{
		BaseEntity:   shared.NewBaseEntity(),
		Code:         shared.DateCode(shared.ReceiptCodePrefix, documentDate),
		Title:        title,
		Amount:       amount,
		DocumentDate: documentDate,
		PayerName:    payerName,
		Description:  description,
		CategoryID:   categoryID,
	}
	r.MarkCreated(actor)
	r.History.Append(actor, map[string]string{"title": title, "amount": amount})
	return r, nil
}

// Update patches the receipt and appends one history entry in the same
// operation as the field update
func (r *Receipt) Update(title, amount string, documentDate time.Time, payerName, description string, actor shared.ActorRef) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Receipt title is required")
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateDocumentDate(documentDate); err != nil {
		return err
	}

	changed := map[string]string{}
	if title != r.Title {
		changed["title"] = title
	}
	if amount != r.Amount {
		changed["amount"] = amount
	}
	if payerName != r.PayerName {
		changed["payerName"] = payerName
	}
	if description != r.Description {
		changed["description"] = description
	}

	r.Title = title
	r.Amount = amount
	r.DocumentDate = documentDate
	r.PayerName = payerName
	r.Description = description
	r.UpdatedAt = time.Now()
	r.MarkUpdated(actor)
	if len(changed) > 0 {
		r.History.Append(actor, changed)
	}
	return nil
}
