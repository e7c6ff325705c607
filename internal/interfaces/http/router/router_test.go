package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/infrastructure/config"
	"github.com/unionadmin/backend/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Handlers are constructed without services; these tests only exercise
// routing and the authentication gate, never the handler bodies.
func newTestEngine() *gin.Engine {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "union-backend-test",
	})

	engine := gin.New()
	Setup(engine, Config{JWTService: jwtService}, Handlers{
		System:          handler.NewSystemHandler(),
		Auth:            handler.NewAuthHandler(nil),
		User:            handler.NewUserHandler(nil),
		Role:            handler.NewRoleHandler(nil),
		Unionist:        handler.NewUnionistHandler(nil),
		Department:      handler.NewDepartmentHandler(nil),
		Post:            handler.NewPostHandler(nil),
		Receipt:         handler.NewReceiptHandler(nil),
		Expense:         handler.NewExpenseHandler(nil),
		IncomeCategory:  handler.NewIncomeCategoryHandler(nil),
		ExpenseCategory: handler.NewExpenseCategoryHandler(nil),
		Fee:             handler.NewFeeHandler(nil),
		Document:        handler.NewDocumentHandler(nil),
	})
	return engine
}

func TestHealthIsPublic(t *testing.T) {
	engine := newTestEngine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine()

	paths := []string{
		"/api/v1/unionists",
		"/api/v1/receipts",
		"/api/v1/fees",
		"/api/v1/documents",
		"/api/v1/users",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestExpectedRoutesRegistered(t *testing.T) {
	engine := newTestEngine()

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/me",
		"POST /api/v1/unionists",
		"GET /api/v1/unionists/code/:code",
		"POST /api/v1/fees/:id/pay",
		"GET /api/v1/fees/unionist/:unionistId/year/:year",
		"GET /api/v1/income-categories",
		"GET /api/v1/expense-categories",
		"GET /api/v1/documents/:id/download",
		"PUT /api/v1/roles/:id/permissions",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}
