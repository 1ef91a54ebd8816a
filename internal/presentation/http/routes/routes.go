package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/presentation/http/handler"
	"github.com/sofazi/backoffice-api/internal/presentation/http/middleware"
	"github.com/sofazi/backoffice-api/pkg/utils"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Debt      *handler.DebtHandler
	Expense   *handler.ExpenseHandler
	Transport *handler.TransportHandler
	Purchase  *handler.PurchaseHandler
	Worker    *handler.WorkerHandler
	Order     *handler.OrderHandler
	Supplier  *handler.SupplierHandler
	Catalog   *handler.CatalogHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine, h *Handlers, jwtManager *utils.JWTManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	{
		protected.GET("/auth/me", h.Auth.Me)

		users := protected.Group("/users")
		users.Use(middleware.RequireRole("admin"))
		{
			users.GET("", h.Auth.ListUsers)
			users.POST("", h.Auth.CreateUser)
			users.PUT("/:id", h.Auth.UpdateUser)
			users.DELETE("/:id", h.Auth.DeleteUser)
		}

		debts := protected.Group("/debts")
		{
			debts.GET("", h.Debt.List)
			debts.POST("", h.Debt.Create)
			debts.GET("/:id", h.Debt.Get)
			debts.PUT("/:id", h.Debt.Update)
			debts.DELETE("/:id", h.Debt.Delete)
			debts.POST("/:id/pay", h.Debt.Pay)
			debts.POST("/:id/pay-full", h.Debt.PayFull)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", h.Expense.List)
			expenses.POST("", h.Expense.Create)
			expenses.GET("/:id", h.Expense.Get)
			expenses.PUT("/:id", h.Expense.Update)
			expenses.DELETE("/:id", h.Expense.Delete)
		}

		transports := protected.Group("/transports")
		{
			transports.GET("", h.Transport.List)
			transports.POST("", h.Transport.Create)
			transports.GET("/:id", h.Transport.Get)
			transports.PUT("/:id", h.Transport.Update)
			transports.DELETE("/:id", h.Transport.Delete)
		}

		transportCategories := protected.Group("/transport-categories")
		{
			transportCategories.GET("", h.Transport.ListCategories)
			transportCategories.POST("", h.Transport.CreateCategory)
			transportCategories.GET("/sub-types", h.Transport.ListSubTypes)
			transportCategories.POST("/sub-types", h.Transport.CreateSubType)
		}

		purchases := protected.Group("/purchases")
		{
			purchases.GET("", h.Purchase.List)
			purchases.POST("", h.Purchase.Create)
			purchases.GET("/:id", h.Purchase.Get)
			purchases.DELETE("/:id", h.Purchase.Delete)
		}

		workers := protected.Group("/workers")
		{
			workers.GET("", h.Worker.List)
			workers.POST("", h.Worker.Create)
			workers.GET("/:id", h.Worker.Get)
			workers.PUT("/:id", h.Worker.Update)
			workers.DELETE("/:id", h.Worker.Delete)
			workers.POST("/:id/toggle-active", h.Worker.ToggleActive)
			workers.POST("/:id/absences", h.Worker.RecordAbsence)
			workers.POST("/:id/advances", h.Worker.RecordAdvance)
			workers.POST("/:id/incentives", h.Worker.RecordIncentive)
			workers.POST("/:id/outside-work", h.Worker.RecordOutsideWork)
			workers.POST("/:id/late-hours", h.Worker.RecordLateHours)
			workers.POST("/:id/pay-salary", h.Worker.PaySalary)
			workers.GET("/:id/history", h.Worker.History)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("", h.Order.List)
			orders.POST("", h.Order.Create)
			orders.GET("/:id", h.Order.Get)
			orders.PUT("/:id", h.Order.Update)
			orders.DELETE("/:id", h.Order.Delete)
			orders.POST("/:id/payments", h.Order.AddPayment)
			orders.GET("/:id/history", h.Order.History)
		}

		statuses := protected.Group("/statuses")
		{
			statuses.GET("", h.Order.ListStatuses)
			statuses.POST("", h.Order.CreateStatus)
			statuses.DELETE("/:id", h.Order.DeleteStatus)
		}

		suppliers := protected.Group("/suppliers")
		{
			suppliers.GET("", h.Supplier.List)
			suppliers.POST("", h.Supplier.Create)
			suppliers.GET("/:id", h.Supplier.Get)
			suppliers.PUT("/:id", h.Supplier.Update)
			suppliers.DELETE("/:id", h.Supplier.Delete)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", h.Catalog.ListCategories)
			categories.POST("", h.Catalog.CreateCategory)
			categories.DELETE("/:id", h.Catalog.DeleteCategory)
		}

		products := protected.Group("/products")
		{
			products.GET("", h.Catalog.ListProducts)
			products.POST("", h.Catalog.CreateProduct)
			products.DELETE("/:id", h.Catalog.DeleteProduct)
			products.GET("/price-history", h.Catalog.PriceHistory)
		}

		protected.GET("/dashboard/stats", h.Dashboard.Stats)

		settings := protected.Group("/settings")
		{
			settings.GET("", h.Settings.Get)
			settings.PUT("", middleware.RequireRole("admin"), h.Settings.Update)
		}
	}
}
