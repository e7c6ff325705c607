// Package router wires the HTTP handlers onto the gin engine. Route
// registration lives here so cmd/server only assembles dependencies.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/interfaces/http/handler"
	"github.com/unionadmin/backend/internal/interfaces/http/middleware"
)

// Handlers collects every HTTP handler mounted by the router
type Handlers struct {
	System          *handler.SystemHandler
	Auth            *handler.AuthHandler
	User            *handler.UserHandler
	Role            *handler.RoleHandler
	Unionist        *handler.UnionistHandler
	Department      *handler.DepartmentHandler
	Post            *handler.PostHandler
	Receipt         *handler.ReceiptHandler
	Expense         *handler.ExpenseHandler
	IncomeCategory  *handler.CategoryHandler
	ExpenseCategory *handler.CategoryHandler
	Fee             *handler.FeeHandler
	Document        *handler.DocumentHandler
}

// Config holds the router dependencies
type Config struct {
	JWTService *auth.JWTService
	Logger     *zap.Logger
	APIVersion string
}

// Setup registers all routes. Public endpoints (health, login, refresh)
// live outside the authenticated group; everything else requires a valid
// access token and, for mutations, the matching role permission.
func Setup(engine *gin.Engine, cfg Config, h Handlers) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "v1"
	}

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/" + cfg.APIVersion)
	api.GET("/system/info", h.System.Info)

	// Public authentication endpoints
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthWithConfig(middleware.JWTConfig{
		JWTService: cfg.JWTService,
		Logger:     cfg.Logger,
	}))

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)

	registerIdentityRoutes(protected, h)
	registerUnionRoutes(protected, h)
	registerFinanceRoutes(protected, h)
	registerDocumentRoutes(protected, h)
}

func registerIdentityRoutes(rg *gin.RouterGroup, h Handlers) {
	users := rg.Group("/users", middleware.RequirePermission("users:manage"))
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.GET("/code/:code", h.User.GetByCode)
	users.PUT("/:id", h.User.Update)
	users.PUT("/:id/password", h.User.ChangePassword)
	users.PUT("/:id/role", h.User.AssignRole)
	users.DELETE("/:id", h.User.Delete)

	roles := rg.Group("/roles", middleware.RequirePermission("roles:manage"))
	roles.POST("", h.Role.Create)
	roles.GET("", h.Role.List)
	roles.GET("/:id", h.Role.Get)
	roles.PUT("/:id", h.Role.Update)
	roles.PUT("/:id/permissions", h.Role.ReplacePermissions)
	roles.DELETE("/:id", h.Role.Delete)

	permissions := rg.Group("/permissions", middleware.RequirePermission("roles:manage"))
	permissions.POST("", h.Role.CreatePermission)
	permissions.GET("", h.Role.ListPermissions)
}

func registerUnionRoutes(rg *gin.RouterGroup, h Handlers) {
	unionists := rg.Group("/unionists")
	unionists.POST("", middleware.RequirePermission("unionists:create"), h.Unionist.Create)
	unionists.GET("", middleware.RequirePermission("unionists:read"), h.Unionist.List)
	unionists.GET("/:id", middleware.RequirePermission("unionists:read"), h.Unionist.Get)
	unionists.GET("/code/:code", middleware.RequirePermission("unionists:read"), h.Unionist.GetByCode)
	unionists.PUT("/:id", middleware.RequirePermission("unionists:update"), h.Unionist.Update)
	unionists.DELETE("/:id", middleware.RequirePermission("unionists:delete"), h.Unionist.Delete)

	departments := rg.Group("/departments")
	departments.POST("", middleware.RequirePermission("departments:create"), h.Department.Create)
	departments.GET("", middleware.RequirePermission("departments:read"), h.Department.List)
	departments.GET("/:id", middleware.RequirePermission("departments:read"), h.Department.Get)
	departments.GET("/code/:code", middleware.RequirePermission("departments:read"), h.Department.GetByCode)
	departments.PUT("/:id", middleware.RequirePermission("departments:update"), h.Department.Update)
	departments.DELETE("/:id", middleware.RequirePermission("departments:delete"), h.Department.Delete)

	posts := rg.Group("/posts")
	posts.POST("", middleware.RequirePermission("posts:create"), h.Post.Create)
	posts.GET("", middleware.RequirePermission("posts:read"), h.Post.List)
	posts.GET("/:id", middleware.RequirePermission("posts:read"), h.Post.Get)
	posts.PUT("/:id", middleware.RequirePermission("posts:update"), h.Post.Update)
	posts.DELETE("/:id", middleware.RequirePermission("posts:delete"), h.Post.Delete)
}

func registerFinanceRoutes(rg *gin.RouterGroup, h Handlers) {
	receipts := rg.Group("/receipts")
	receipts.POST("", middleware.RequirePermission("receipts:create"), h.Receipt.Create)
	receipts.GET("", middleware.RequirePermission("receipts:read"), h.Receipt.List)
	receipts.GET("/:id", middleware.RequirePermission("receipts:read"), h.Receipt.Get)
	receipts.PUT("/:id", middleware.RequirePermission("receipts:update"), h.Receipt.Update)
	receipts.DELETE("/:id", middleware.RequirePermission("receipts:delete"), h.Receipt.Delete)

	expenses := rg.Group("/expenses")
	expenses.POST("", middleware.RequirePermission("expenses:create"), h.Expense.Create)
	expenses.GET("", middleware.RequirePermission("expenses:read"), h.Expense.List)
	expenses.GET("/:id", middleware.RequirePermission("expenses:read"), h.Expense.Get)
	expenses.PUT("/:id", middleware.RequirePermission("expenses:update"), h.Expense.Update)
	expenses.DELETE("/:id", middleware.RequirePermission("expenses:delete"), h.Expense.Delete)

	incomeCategories := rg.Group("/income-categories", middleware.RequirePermission("categories:manage"))
	incomeCategories.POST("", h.IncomeCategory.Create)
	incomeCategories.GET("", h.IncomeCategory.List)
	incomeCategories.GET("/:id", h.IncomeCategory.Get)
	incomeCategories.PUT("/:id", h.IncomeCategory.Update)
	incomeCategories.DELETE("/:id", h.IncomeCategory.Delete)

	expenseCategories := rg.Group("/expense-categories", middleware.RequirePermission("categories:manage"))
	expenseCategories.POST("", h.ExpenseCategory.Create)
	expenseCategories.GET("", h.ExpenseCategory.List)
	expenseCategories.GET("/:id", h.ExpenseCategory.Get)
	expenseCategories.PUT("/:id", h.ExpenseCategory.Update)
	expenseCategories.DELETE("/:id", h.ExpenseCategory.Delete)

	fees := rg.Group("/fees")
	fees.POST("", middleware.RequirePermission("fees:create"), h.Fee.Create)
	fees.GET("", middleware.RequirePermission("fees:read"), h.Fee.List)
	fees.GET("/:id", middleware.RequirePermission("fees:read"), h.Fee.Get)
	fees.GET("/unionist/:unionistId/year/:year", middleware.RequirePermission("fees:read"), h.Fee.GetByUnionistYear)
	fees.PUT("/:id", middleware.RequirePermission("fees:update"), h.Fee.Update)
	fees.POST("/:id/pay", middleware.RequirePermission("fees:update"), h.Fee.MarkPaid)
	fees.DELETE("/:id", middleware.RequirePermission("fees:delete"), h.Fee.Delete)
}

func registerDocumentRoutes(rg *gin.RouterGroup, h Handlers) {
	documents := rg.Group("/documents")
	documents.POST("", middleware.RequirePermission("documents:create"), h.Document.Upload)
	documents.GET("", middleware.RequirePermission("documents:read"), h.Document.List)
	documents.GET("/owner/:ownerType/:ownerId", middleware.RequirePermission("documents:read"), h.Document.ListByOwner)
	documents.GET("/:id", middleware.RequirePermission("documents:read"), h.Document.Get)
	documents.GET("/:id/download", middleware.RequirePermission("documents:read"), h.Document.Download)
	documents.GET("/:id/presign", middleware.RequirePermission("documents:read"), h.Document.PresignDownload)
	documents.POST("/:id/attach", middleware.RequirePermission("documents:update"), h.Document.Attach)
	documents.PUT("/:id", middleware.RequirePermission("documents:update"), h.Document.Update)
	documents.DELETE("/:id", middleware.RequirePermission("documents:delete"), h.Document.Delete)
}
