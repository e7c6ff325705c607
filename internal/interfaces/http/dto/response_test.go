package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/unionadmin/backend/internal/domain/shared"
)

func TestNewListEnvelope(t *testing.T) {
	query := shared.ListQuery{Current: 2, PageSize: 10}

	envelope := NewListEnvelope([]string{"a", "b"}, query, 25)

	assert.Equal(t, 2, envelope.Meta.Current)
	assert.Equal(t, 10, envelope.Meta.PageSize)
	assert.Equal(t, 3, envelope.Meta.Pages)
	assert.Equal(t, int64(25), envelope.Meta.Total)
	assert.Empty(t, envelope.Meta.TotalAmount)
}

func TestListEnvelope_AggregateFieldsOmittedWhenUnset(t *testing.T) {
	envelope := NewListEnvelope([]int{}, shared.ListQuery{Current: 1, PageSize: 10}, 0)

	raw, err := json.Marshal(envelope)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "totalAmount")
	assert.NotContains(t, string(raw), "totalBudget")
	assert.NotContains(t, string(raw), "totalFee")
	assert.Contains(t, string(raw), `"pages":0`)
}

func TestListEnvelope_WithTotalAmount(t *testing.T) {
	envelope := NewListEnvelope([]int{1}, shared.ListQuery{Current: 1, PageSize: 10}, 1).
		WithTotalAmount(decimal.NewFromInt(1750000))

	raw, err := json.Marshal(envelope)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"totalAmount":"1750000"`)
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidationFailed))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeUnauthorized))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeCodeExhausted))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}
