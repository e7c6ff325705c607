package finance

import (
	"strconv"
	"strings"
	"time"

	"github.com/unionadmin/backend/internal/domain/shared"
)

// CategoryKind separates income categories (DMT) from expense categories (DMC)
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// CodePrefix returns the date-code prefix for the kind
func (k CategoryKind) CodePrefix() string {
	if k == CategoryKindExpense {
		return shared.ExpenseCategoryCodePrefix
	}
	return shared.IncomeCategoryCodePrefix
}

// Category is a yearly income or expense category with a planned budget.
// Budget changes are tracked in the append-only history.
type Category struct {
	shared.BaseEntity
	shared.Auditable
	Code        string         `gorm:"type:varchar(20);index"`
	Kind        CategoryKind   `gorm:"type:varchar(10);not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Year        int            `gorm:"not null;index"`
	Budget      string         `gorm:"type:varchar(20);not null"`
	Description string         `gorm:"type:text"`
	History     shared.History `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "finance_categories"
}

// NewCategory creates a category. The code is the kind prefix stamped with
// the creation date.
func NewCategory(kind CategoryKind, name string, year int, budget, description string, actor shared.ActorRef) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Category name is required")
	}
	if kind != CategoryKindIncome && kind != CategoryKindExpense {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Category kind must be income or expense")
	}
	if year < 1970 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Category year must be 1970 or later")
	}
	if err := ValidateAmount(budget); err != nil {
		return nil, err
	}

	c := &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Kind:        kind,
		Name:        name,
		Year:        year,
		Budget:      budget,
		Description: description,
	}
	c.Code = shared.DateCode(kind.CodePrefix(), c.CreatedAt)
	c.MarkCreated(actor)
	c.History.Append(actor, map[string]string{"name": name, "budget": budget})
	return c, nil
}

// Update patches the category and appends one history entry snapshotting
// the changed fields in the same operation
func (c *Category) Update(name string, year int, budget, description string, actor shared.ActorRef) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Category name is required")
	}
	if year < 1970 {
		return shared.NewDomainError("VALIDATION_FAILED", "Category year must be 1970 or later")
	}
	if err := ValidateAmount(budget); err != nil {
		return err
	}

	changed := map[string]string{}
	if name != c.Name {
		changed["name"] = name
	}
	if year != c.Year {
		changed["year"] = strconv.Itoa(year)
	}
	if budget != c.Budget {
		changed["budget"] = budget
	}
	if description != c.Description {
		changed["description"] = description
	}

	c.Name = name
	c.Year = year
	c.Budget = budget
	c.Description = description
	c.UpdatedAt = time.Now()
	c.MarkUpdated(actor)
	if len(changed) > 0 {
		c.History.Append(actor, changed)
	}
	return nil
}
