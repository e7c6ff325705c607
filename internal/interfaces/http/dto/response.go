// Package dto defines the wire envelopes of the HTTP API. Their field names
// are a compatibility contract consumed by existing clients and must not
// change shape.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/unionadmin/backend/internal/domain/shared"
)

// Response is the envelope for every non-list operation. The statusCode
// field mirrors the HTTP status of the reply.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// ListMeta is the pagination block of a list reply. The aggregate fields are
// present only on the collections that define them and always describe the
// whole filtered set, not the returned page.
type ListMeta struct {
	Current     int    `json:"current"`
	PageSize    int    `json:"pageSize"`
	Pages       int    `json:"pages"`
	Total       int64  `json:"total"`
	TotalAmount string `json:"totalAmount,omitempty"`
	TotalBudget string `json:"totalBudget,omitempty"`
	TotalFee    string `json:"totalFee,omitempty"`
}

// ListEnvelope is the envelope for every list operation
type ListEnvelope struct {
	Meta   ListMeta    `json:"meta"`
	Result interface{} `json:"result"`
}

// NewResponse builds the single-operation envelope
func NewResponse(statusCode int, message string, data interface{}) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// NewListEnvelope builds a list envelope. Pages is ceil(total/pageSize) and
// is zero exactly when total is zero.
func NewListEnvelope(result interface{}, query shared.ListQuery, total int64) ListEnvelope {
	return ListEnvelope{
		Meta: ListMeta{
			Current:  query.Current,
			PageSize: query.PageSize,
			Pages:    shared.Pages(total, query.PageSize),
			Total:    total,
		},
		Result: result,
	}
}

// WithTotalAmount attaches the aggregate amount of the filtered set
func (e ListEnvelope) WithTotalAmount(sum decimal.Decimal) ListEnvelope {
	e.Meta.TotalAmount = sum.String()
	return e
}

// WithTotalBudget attaches the aggregate budget of the filtered set
func (e ListEnvelope) WithTotalBudget(sum decimal.Decimal) ListEnvelope {
	e.Meta.TotalBudget = sum.String()
	return e
}

// WithTotalFee attaches the aggregate fee of the filtered set
func (e ListEnvelope) WithTotalFee(sum decimal.Decimal) ListEnvelope {
	e.Meta.TotalFee = sum.String()
	return e
}
