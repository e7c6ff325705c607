package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// maxCodeRetries bounds how often an insert is retried after losing a code
// allocation race to a concurrent writer.
const maxCodeRetries = 3

// GormCodeAllocator allocates sequential business codes (STU00001, CD00042,
// DV07) by reading the current maximum for a prefix. It must run inside the
// same transaction as the insert; the unique index on the code column is the
// real guard, the retry in CreateWithCode handles the race.
type GormCodeAllocator struct {
	db *gorm.DB
}

// NewGormCodeAllocator creates a code allocator bound to a DB handle
func NewGormCodeAllocator(db *gorm.DB) *GormCodeAllocator {
	return &GormCodeAllocator{db: db}
}

// Next returns the next unused code for the rule's prefix in the given table
func (a *GormCodeAllocator) Next(ctx context.Context, table string, rule shared.CodeRule) (string, error) {
	var last string
	err := a.db.WithContext(ctx).
		Table(table).
		Select("code").
		Where("code LIKE ?", rule.Prefix+"%").
		Order("code DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}
	return rule.Next(last)
}

var _ shared.CodeAllocator = (*GormCodeAllocator)(nil)

// isUniqueViolation reports whether an insert failed on a unique constraint.
// Covers Postgres (SQLSTATE 23505) and SQLite used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// CreateWithCode inserts an entity whose sequential code is allocated in the
// same transaction. On a unique violation for the code column the allocation
// and insert are retried; any other error is returned as is.
func CreateWithCode(ctx context.Context, db *gorm.DB, table string, rule shared.CodeRule, setCode func(string), create func(tx *gorm.DB) error) error {
	var lastErr error
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			code, err := NewGormCodeAllocator(tx).Next(ctx, table, rule)
			if err != nil {
				return err
			}
			setCode(code)
			return create(tx)
		})
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("code allocation retries exhausted: %w", lastErr)
}
