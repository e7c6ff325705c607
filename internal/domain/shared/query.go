package shared

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is used whenever pageSize is absent, zero, negative or
// non-numeric.
const DefaultPageSize = 10

// Op is a filter comparison operator. The set is closed on purpose: query
// strings are translated into these variants only, so user input can never
// smuggle arbitrary operators into the storage layer.
type Op int

const (
	OpEq Op = iota
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	OpLike
)

// Condition is a single field constraint derived from the query string
type Condition struct {
	Field  string
	Op     Op
	Value  string
	Values []string // populated for OpIn
}

// SortField is one element of the requested sort order
type SortField struct {
	Field string
	Desc  bool
}

// ListQuery is the structured query specification every list operation
// consumes: filter conditions, sort order, field projection, relation
// expansion and pagination.
type ListQuery struct {
	Conditions []Condition
	Sort       []SortField
	Fields     []string
	Populate   []string
	Current    int
	PageSize   int
}

// reserved query keys that never become filter fields
var reservedKeys = map[string]bool{
	"current":  true,
	"pageSize": true,
	"sort":     true,
	"fields":   true,
	"populate": true,
}

// ParseListQuery translates a raw HTTP query string into a ListQuery.
// Operators are embedded in the value: ">", ">=", "<", "<=", "<>" (not
// equal), ":" (substring match) and comma-separated lists ("one of").
// Parsing is permissive: anything that does not match the operator grammar
// falls back to a literal equality filter. Reserved keys (current, pageSize,
// sort, fields, populate) are always stripped from the filter.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Current:  parsePage(values.Get("current")),
		PageSize: parsePageSize(values.Get("pageSize")),
		Sort:     parseSort(values.Get("sort")),
		Fields:   splitList(values.Get("fields")),
		Populate: splitList(values.Get("populate")),
	}

	for key, vals := range values {
		if reservedKeys[key] || key == "" {
			continue
		}
		for _, raw := range vals {
			q.Conditions = append(q.Conditions, parseCondition(key, raw))
		}
	}
	return q
}

// Offset returns the number of records to skip
func (q ListQuery) Offset() int {
	return (q.Current - 1) * q.PageSize
}

// Limit returns the effective page size
func (q ListQuery) Limit() int {
	return q.PageSize
}

// Pages computes the total page count: ceil(total / pageSize).
// It is zero exactly when total is zero.
func Pages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parsePageSize(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultPageSize
	}
	return n
}

func parseSort(raw string) []SortField {
	var sort []SortField
	for _, part := range splitList(raw) {
		if field, ok := strings.CutPrefix(part, "-"); ok {
			if field != "" {
				sort = append(sort, SortField{Field: field, Desc: true})
			}
			continue
		}
		sort = append(sort, SortField{Field: part})
	}
	return sort
}

func parseCondition(field, raw string) Condition {
	switch {
	case strings.HasPrefix(raw, ">="):
		return Condition{Field: field, Op: OpGte, Value: raw[2:]}
	case strings.HasPrefix(raw, "<="):
		return Condition{Field: field, Op: OpLte, Value: raw[2:]}
	case strings.HasPrefix(raw, "<>"):
		return Condition{Field: field, Op: OpNe, Value: raw[2:]}
	case strings.HasPrefix(raw, ">"):
		return Condition{Field: field, Op: OpGt, Value: raw[1:]}
	case strings.HasPrefix(raw, "<"):
		return Condition{Field: field, Op: OpLt, Value: raw[1:]}
	case strings.HasPrefix(raw, ":"):
		return Condition{Field: field, Op: OpLike, Value: raw[1:]}
	case strings.Contains(raw, ","):
		return Condition{Field: field, Op: OpIn, Values: splitList(raw)}
	default:
		return Condition{Field: field, Op: OpEq, Value: raw}
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
