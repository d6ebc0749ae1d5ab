package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmaplus/pos-api/internal/config"
	domainRepo "github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/internal/presentation/http/handler"
	"github.com/pharmaplus/pos-api/internal/presentation/http/middleware"
	"github.com/pharmaplus/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Terminal     *handler.TerminalHandler
	Sale         *handler.SaleHandler
	Return       *handler.ReturnHandler
	Prescription *handler.PrescriptionHandler
	Report       *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewKeyedRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Profile)

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireRole("admin"), h.Product.Create)
		products.PUT("/:id", middleware.RequireRole("admin"), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	// Retried checkouts and returns must not double-post the ledgers, so
	// both write paths run behind the idempotency middleware.
	idem := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	// Terminal cart operations
	terminals := protected.Group("/terminals/:terminal_id")
	{
		terminals.GET("/cart", h.Terminal.Cart)
		terminals.POST("/cart/items", h.Terminal.Scan)
		terminals.PUT("/cart/items/:line_id", h.Terminal.UpdateQuantity)
		terminals.DELETE("/cart/items/:line_id", h.Terminal.RemoveLine)
		terminals.PUT("/cart/discount", h.Terminal.SetDiscount)
		terminals.PUT("/cart/customer", h.Terminal.SetCustomer)
		terminals.DELETE("/cart", h.Terminal.Void)
		terminals.POST("/checkout", idem, h.Terminal.Checkout)
		terminals.POST("/hold", h.Terminal.Hold)
		terminals.POST("/recall/:held_id", h.Terminal.Recall)
	}

	// Hold registry
	held := protected.Group("/held-transactions")
	{
		held.GET("", h.Terminal.ListHeld)
		held.DELETE("/:held_id", h.Terminal.DeleteHeld)
	}

	// Finalized sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.Receipt)
	}

	// Returns
	returns := protected.Group("/returns")
	{
		returns.GET("/lookup", h.Return.Lookup)
		returns.POST("", idem, h.Return.Process)
		returns.GET("", h.Return.List)
		returns.GET("/:id", h.Return.Get)
	}

	// Prescriptions
	prescriptions := protected.Group("/prescriptions")
	{
		prescriptions.GET("", h.Prescription.List)
		prescriptions.GET("/:id", h.Prescription.Get)
		prescriptions.POST("", h.Prescription.Create)
		prescriptions.PUT("/:id/status", h.Prescription.UpdateStatus)
		prescriptions.DELETE("/:id", h.Prescription.Delete)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/daily-sales", h.Report.DailySales)
		reports.GET("/inventory", h.Report.Inventory)
		reports.GET("/prescriptions", h.Report.Prescriptions)
		reports.GET("/returns", h.Report.Returns)
	}
}
