package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financeapp "github.com/unionadmin/backend/internal/application/finance"
	"github.com/unionadmin/backend/internal/domain/finance"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/interfaces/http/middleware"
)

// stubReceiptRepository keeps receipts in memory for handler tests
type stubReceiptRepository struct {
	receipts []*finance.Receipt
}

func (r *stubReceiptRepository) Create(_ context.Context, receipt *finance.Receipt) error {
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *stubReceiptRepository) Save(_ context.Context, receipt *finance.Receipt) error {
	return nil
}

func (r *stubReceiptRepository) FindByID(_ context.Context, id uuid.UUID) (*finance.Receipt, error) {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			return receipt, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubReceiptRepository) List(_ context.Context, _ shared.ListQuery) ([]finance.Receipt, int64, error) {
	items := make([]finance.Receipt, 0, len(r.receipts))
	for _, receipt := range r.receipts {
		items = append(items, *receipt)
	}
	return items, int64(len(items)), nil
}

func (r *stubReceiptRepository) SumAmount(_ context.Context, _ shared.ListQuery) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, receipt := range r.receipts {
		amount, err := decimal.NewFromString(receipt.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(amount)
	}
	return sum, nil
}

// stubCategoryRepository serves a fixed set of categories
type stubCategoryRepository struct {
	categories []*finance.Category
}

func (r *stubCategoryRepository) Create(_ context.Context, category *finance.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *stubCategoryRepository) Save(_ context.Context, _ *finance.Category) error {
	return nil
}

func (r *stubCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*finance.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubCategoryRepository) List(_ context.Context, kind finance.CategoryKind, _ shared.ListQuery) ([]finance.Category, int64, error) {
	var items []finance.Category
	for _, category := range r.categories {
		if category.Kind == kind {
			items = append(items, *category)
		}
	}
	return items, int64(len(items)), nil
}

func (r *stubCategoryRepository) SumBudget(_ context.Context, kind finance.CategoryKind, _ shared.ListQuery) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, category := range r.categories {
		if category.Kind == kind {
			budget, err := decimal.NewFromString(category.Budget)
			if err != nil {
				return decimal.Zero, err
			}
			sum = sum.Add(budget)
		}
	}
	return sum, nil
}

// withTestClaims injects authenticated claims without a real token
func withTestClaims(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, &auth.Claims{
			UserID: userID.String(),
			Email:  "treasurer@union.example",
		})
		c.Next()
	}
}

func newReceiptRouter(t *testing.T) (*gin.Engine, *stubReceiptRepository, *stubCategoryRepository) {
	t.Helper()
	receiptRepo := &stubReceiptRepository{}
	categoryRepo := &stubCategoryRepository{}
	service := financeapp.NewReceiptService(receiptRepo, categoryRepo)
	h := NewReceiptHandler(service)

	router := gin.New()
	router.Use(withTestClaims(uuid.New()))
	router.POST("/receipts", h.Create)
	router.GET("/receipts", h.List)
	router.GET("/receipts/:id", h.Get)
	return router, receiptRepo, categoryRepo
}

func TestReceiptHandler_Create(t *testing.T) {
	router, repo, _ := newReceiptRouter(t)

	body, _ := json.Marshal(gin.H{
		"title":        "Membership dues June",
		"amount":       "500000",
		"documentDate": "2024-06-15",
	})
	req := httptest.NewRequest(http.MethodPost, "/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.receipts, 1)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(201), envelope["statusCode"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "PT15062024", data["code"])
}

func TestReceiptHandler_CreateRejectsLowAmount(t *testing.T) {
	router, repo, _ := newReceiptRouter(t)

	body, _ := json.Marshal(gin.H{
		"title":        "Petty cash",
		"amount":       "999",
		"documentDate": "2024-06-15",
	})
	req := httptest.NewRequest(http.MethodPost, "/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.receipts)
}

func TestReceiptHandler_ListIncludesTotalAmount(t *testing.T) {
	router, repo, _ := newReceiptRouter(t)

	actor := shared.ActorRef{ID: uuid.New(), Email: "treasurer@union.example"}
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, amount := range []string{"1000000", "750000"} {
		receipt, err := finance.NewReceipt("Receipt "+amount, amount, date, "", "", nil, actor)
		require.NoError(t, err)
		repo.receipts = append(repo.receipts, receipt)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/receipts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	meta := envelope["meta"].(map[string]any)
	assert.Equal(t, "1750000", meta["totalAmount"])
	assert.Equal(t, float64(2), meta["total"])
}

func TestReceiptHandler_GetUnknownID(t *testing.T) {
	router, _, _ := newReceiptRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/receipts/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
