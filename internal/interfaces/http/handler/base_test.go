package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/unionadmin/backend/internal/domain/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestHandleError_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound},
		{"already exists", shared.ErrAlreadyExists, http.StatusConflict},
		{"validation", shared.NewDomainError("VALIDATION_FAILED", "Amount must be at least 1000"), http.StatusBadRequest},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden},
		{"code exhausted", shared.ErrCodeExhausted, http.StatusConflict},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, float64(tt.wantStatus), body["statusCode"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandleError_UnknownErrorHidesDetails(t *testing.T) {
	h := &BaseHandler{}
	c, rec := newTestContext(t)

	h.HandleError(c, assert.AnError)

	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestSuccessEnvelope(t *testing.T) {
	h := &BaseHandler{}
	c, rec := newTestContext(t)

	h.Success(c, "OK", gin.H{"id": "abc"})

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, "OK", body["message"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
}

func TestListEnvelopeShape(t *testing.T) {
	h := &BaseHandler{}
	c, rec := newTestContext(t)

	query := shared.ListQuery{Current: 1, PageSize: 10}
	h.List(c, []string{"x"}, query, 11)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	meta, ok := body["meta"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(1), meta["current"])
	assert.Equal(t, float64(10), meta["pageSize"])
	assert.Equal(t, float64(2), meta["pages"])
	assert.Equal(t, float64(11), meta["total"])
	assert.Equal(t, []any{"x"}, body["result"])
}
