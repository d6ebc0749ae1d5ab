package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/config"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/infrastructure/database"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
	"github.com/pharmaplus/pos-api/internal/presentation/http/handler"
	"github.com/pharmaplus/pos-api/internal/presentation/http/routes"
	"github.com/pharmaplus/pos-api/pkg/txid"
	"github.com/pharmaplus/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories. Held transactions are short-lived working
	// state and stay in process memory; everything else goes to Postgres.
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	heldRepo := memory.NewHeldRepository()

	// Transaction number generator, scoped to this branch
	ids := txid.NewGenerator(cfg.Store.BranchCode)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	holdService := service.NewHoldService(heldRepo, ids)
	terminalService := service.NewTerminalService(productRepo, saleRepo, holdService, ids,
		cfg.Store.BranchCode, cfg.Store.StarPointDivisor)
	returnService := service.NewReturnService(saleRepo, returnRepo, ids)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo)
	reportService := service.NewReportService(saleRepo, returnRepo, productRepo, prescriptionRepo)
	saleService := service.NewSaleService(saleRepo, userRepo, entity.ReceiptHeader{
		StoreName: cfg.Store.StoreName,
		Address:   cfg.Store.Address,
		Phone:     cfg.Store.Phone,
		TaxID:     cfg.Store.TaxID,
	})

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Product:      handler.NewProductHandler(productService),
		Terminal:     handler.NewTerminalHandler(terminalService, holdService),
		Sale:         handler.NewSaleHandler(saleService),
		Return:       handler.NewReturnHandler(returnService),
		Prescription: handler.NewPrescriptionHandler(prescriptionService),
		Report:       handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
