package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CodeRule describes a sequential business-code format: a fixed alphabetic
// prefix followed by a fixed-width, zero-padded numeric suffix. The
// prefix/width pairs are a compatibility contract other systems depend on.
type CodeRule struct {
	Prefix string
	Width  int
}

// Sequential code rules per entity
var (
	MemberCodeRule     = CodeRule{Prefix: "STU", Width: 5}
	UnionistCodeRule   = CodeRule{Prefix: "CD", Width: 5}
	DepartmentCodeRule = CodeRule{Prefix: "DV", Width: 2}
)

// Date-stamped code prefixes. The code is the prefix followed by the
// record's document date formatted as ddMMyyyy.
const (
	ReceiptCodePrefix         = "PT"
	ExpenseCodePrefix         = "PC"
	IncomeCategoryCodePrefix  = "DMT"
	ExpenseCategoryCodePrefix = "DMC"

	dateCodeLayout = "02012006"
)

// Format renders the code for a sequence number. The suffix must fit the
// fixed width: the sequence is exhausted once it would overflow the padding,
// and creation has to fail loudly rather than emit a malformed code.
func (r CodeRule) Format(seq int) (string, error) {
	if seq < 1 {
		return "", NewDomainError("VALIDATION_FAILED", fmt.Sprintf("code sequence must be positive, got %d", seq))
	}
	code := fmt.Sprintf("%s%0*d", r.Prefix, r.Width, seq)
	if len(code) > len(r.Prefix)+r.Width {
		return "", ErrCodeExhausted
	}
	return code, nil
}

// Sequence parses the numeric suffix of an existing code. An empty code
// yields the zero baseline so the first allocated code gets suffix 1.
func (r CodeRule) Sequence(code string) (int, error) {
	if code == "" {
		return 0, nil
	}
	suffix, ok := strings.CutPrefix(code, r.Prefix)
	if !ok || len(suffix) != r.Width {
		return 0, NewDomainError("VALIDATION_FAILED", fmt.Sprintf("code %q does not match pattern %s%s", code, r.Prefix, strings.Repeat("#", r.Width)))
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, NewDomainError("VALIDATION_FAILED", fmt.Sprintf("code %q has a non-numeric suffix", code))
	}
	return seq, nil
}

// Next computes the successor of the given code ("" means no prior record)
func (r CodeRule) Next(last string) (string, error) {
	seq, err := r.Sequence(last)
	if err != nil {
		return "", err
	}
	return r.Format(seq + 1)
}

// DateCode stamps a prefix with the document date (ddMMyyyy)
func DateCode(prefix string, t time.Time) string {
	return prefix + t.Format(dateCodeLayout)
}

// CodeAllocator reserves the next sequential business code for a collection.
// Implementations must guarantee uniqueness under concurrent creates; the
// allocation is expected to run inside the same transaction as the insert it
// serves.
type CodeAllocator interface {
	Next(ctx context.Context, table string, rule CodeRule) (string, error)
}
