package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// Expense records money paid out by the union (code PC + expense date)
type Expense struct {
	shared.BaseEntity
	shared.Auditable
	Code         string         `gorm:"type:varchar(20);index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Amount       string         `gorm:"type:varchar(20);not null"`
	DocumentDate time.Time      `gorm:"not null;index"`
	PayeeName    string         `gorm:"type:varchar(255)"`
	Description  string         `gorm:"type:text"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index"`
	Category     *Category      `gorm:"foreignKey:CategoryID"`
	History      shared.History `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates an expense record
func NewExpense(title, amount string, documentDate time.Time, payeeName, description string, categoryID *uuid.UUID, actor shared.ActorRef) (*Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Expense title is required")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateDocumentDate(documentDate); err != nil {
		return nil, err
	}

	e := &Expense{
		BaseEntity:   shared.NewBaseEntity(),
		Code:         shared.DateCode(shared.ExpenseCodePrefix, documentDate),
		Title:        title,
		Amount:       amount,
		DocumentDate: documentDate,
		PayeeName:    payeeName,
		Description:  description,
		CategoryID:   categoryID,
	}
	e.MarkCreated(actor)
	e.History.Append(actor, map[string]string{"title": title, "amount": amount})
	return e, nil
}

// Update patches the expense and appends one history entry in the same
// operation as the field update
func (e *Expense) Update(title, amount string, documentDate time.Time, payeeName, description string, actor shared.ActorRef) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Expense title is required")
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateDocumentDate(documentDate); err != nil {
		return err
	}

	changed := map[string]string{}
	if title != e.Title {
		changed["title"] = title
	}
	if amount != e.Amount {
		changed["amount"] = amount
	}
	if payeeName != e.PayeeName {
		changed["payeeName"] = payeeName
	}
	if description != e.Description {
		changed["description"] = description
	}

	e.Title = title
	e.Amount = amount
	e.DocumentDate = documentDate
	e.PayeeName = payeeName
	e.Description = description
	e.UpdatedAt = time.Now()
	e.MarkUpdated(actor)
	if len(changed) > 0 {
		e.History.Append(actor, changed)
	}
	return nil
}
