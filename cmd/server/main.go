package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	documentapp "github.com/unionadmin/backend/internal/application/document"
	financeapp "github.com/unionadmin/backend/internal/application/finance"
	identityapp "github.com/unionadmin/backend/internal/application/identity"
	unionapp "github.com/unionadmin/backend/internal/application/union"
	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/infrastructure/config"
	"github.com/unionadmin/backend/internal/infrastructure/logger"
	"github.com/unionadmin/backend/internal/infrastructure/persistence"
	"github.com/unionadmin/backend/internal/infrastructure/storage"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
	"github.com/unionadmin/backend/internal/interfaces/http/handler"
	"github.com/unionadmin/backend/internal/interfaces/http/middleware"
	"github.com/unionadmin/backend/internal/interfaces/http/router"

	_ "github.com/unionadmin/backend/docs"
)

//	@title			Union Admin API
//	@version		1.0
//	@description	Union membership and fee administration backend

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting union backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	refreshStore, err := auth.NewRedisRefreshTokenStore(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := refreshStore.Close(); err != nil {
			log.Error("Error closing redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	permissionRepo := persistence.NewGormPermissionRepository(db.DB)
	unionistRepo := persistence.NewGormUnionistRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	receiptRepo := persistence.NewGormReceiptRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	feeRepo := persistence.NewGormFeeRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, refreshStore)
	userService := identityapp.NewUserService(userRepo, roleRepo)
	roleService := identityapp.NewRoleService(roleRepo, permissionRepo)
	unionistService := unionapp.NewUnionistService(unionistRepo, departmentRepo, postRepo)
	departmentService := unionapp.NewDepartmentService(departmentRepo)
	postService := unionapp.NewPostService(postRepo)
	receiptService := financeapp.NewReceiptService(receiptRepo, categoryRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, categoryRepo)
	incomeCategoryService := financeapp.NewIncomeCategoryService(categoryRepo)
	expenseCategoryService := financeapp.NewExpenseCategoryService(categoryRepo)
	feeService := financeapp.NewFeeService(feeRepo, unionistRepo)
	documentService := documentapp.NewDocumentService(documentRepo, objectStorage)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, tracerProvider.IsEnabled()))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.Setup(engine, router.Config{
		JWTService: jwtService,
		Logger:     log,
	}, router.Handlers{
		System:          handler.NewSystemHandler(),
		Auth:            handler.NewAuthHandler(authService),
		User:            handler.NewUserHandler(userService),
		Role:            handler.NewRoleHandler(roleService),
		Unionist:        handler.NewUnionistHandler(unionistService),
		Department:      handler.NewDepartmentHandler(departmentService),
		Post:            handler.NewPostHandler(postService),
		Receipt:         handler.NewReceiptHandler(receiptService),
		Expense:         handler.NewExpenseHandler(expenseService),
		IncomeCategory:  handler.NewIncomeCategoryHandler(incomeCategoryService),
		ExpenseCategory: handler.NewExpenseCategoryHandler(expenseCategoryService),
		Fee:             handler.NewFeeHandler(feeService),
		Document:        handler.NewDocumentHandler(documentService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
