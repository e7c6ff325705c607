package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// Monetary bounds for every financial amount in the system. Amounts are
// persisted as strings; validation parses them with decimal arithmetic so
// "1e9" style notation and plain digits are treated alike.
var (
	minAmount = decimal.NewFromInt(1_000)
	maxAmount = decimal.NewFromInt(10_000_000_000) // exclusive
)

// minDocumentDate is the floor for every document date
var minDocumentDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidateAmount checks that a stored amount string parses and falls inside
// [1 000, 10 000 000 000)
func ValidateAmount(raw string) error {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return shared.NewDomainError("VALIDATION_FAILED", fmt.Sprintf("Amount %q is not a number", raw))
	}
	if amount.LessThan(minAmount) || amount.GreaterThanOrEqual(maxAmount) {
		return shared.NewDomainError("VALIDATION_FAILED",
			fmt.Sprintf("Amount must be between %s and %s, got %s", minAmount, maxAmount, amount))
	}
	return nil
}

// ValidateDocumentDate checks that a document date falls inside
// [1970-01-01, today]
func ValidateDocumentDate(t time.Time) error {
	if t.Before(minDocumentDate) {
		return shared.NewDomainError("VALIDATION_FAILED", "Document date cannot be before 1970-01-01")
	}
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	if t.After(endOfToday) {
		return shared.NewDomainError("VALIDATION_FAILED", "Document date cannot be in the future")
	}
	return nil
}
