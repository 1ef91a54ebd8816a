package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/config"
	"github.com/sofazi/backoffice-api/internal/infrastructure/database"
	infraRepo "github.com/sofazi/backoffice-api/internal/infrastructure/repository"
	"github.com/sofazi/backoffice-api/internal/presentation/http/handler"
	"github.com/sofazi/backoffice-api/internal/presentation/http/middleware"
	"github.com/sofazi/backoffice-api/internal/presentation/http/routes"
	"github.com/sofazi/backoffice-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Repositories
	debtRepo := infraRepo.NewDebtRepository(db)
	expenseRepo := infraRepo.NewExpenseRepository(db)
	transportRepo := infraRepo.NewTransportRepository(db)
	purchaseRepo := infraRepo.NewPurchaseRepository(db)
	workerRepo := infraRepo.NewWorkerRepository(db)
	workerHistoryRepo := infraRepo.NewWorkerHistoryRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	orderHistoryRepo := infraRepo.NewOrderHistoryRepository(db)
	statusRepo := infraRepo.NewStatusRepository(db)
	supplierRepo := infraRepo.NewSupplierRepository(db)
	categoryRepo := infraRepo.NewExpenseCategoryRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	priceHistoryRepo := infraRepo.NewPriceHistoryRepository(db)
	transportCategoryRepo := infraRepo.NewTransportCategoryRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	userRepo := infraRepo.NewUserRepository(db)

	// Services
	debtService := service.NewDebtService(debtRepo, expenseRepo, transportRepo, purchaseRepo)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, supplierRepo, priceHistoryRepo, debtService)
	transportService := service.NewTransportService(transportRepo, transportCategoryRepo, debtService)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo, debtService)
	workerService := service.NewWorkerService(workerRepo, workerHistoryRepo, cfg.Payroll.LateHourRate)
	orderService := service.NewOrderService(orderRepo, orderHistoryRepo, statusRepo, workerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, priceHistoryRepo)
	dashboardService := service.NewDashboardService(debtRepo, expenseRepo, orderRepo, workerRepo, workerService)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Debt:      handler.NewDebtHandler(debtService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Transport: handler.NewTransportHandler(transportService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Worker:    handler.NewWorkerHandler(workerService),
		Order:     handler.NewOrderHandler(orderService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	routes.SetupRoutes(router, handlers, jwtManager)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
