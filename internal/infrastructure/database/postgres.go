package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pharmaplus/pos-api/internal/config"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Accounts
		&entity.User{},

		// Catalog
		&entity.Product{},

		// Transaction ledgers
		&entity.SaleTransaction{},
		&entity.SaleLine{},
		&entity.ReturnTransaction{},
		&entity.ReturnLine{},

		// Prescriptions
		&entity.Prescription{},
		&entity.PrescriptionMedicine{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a default admin, a cashier and a
// starter catalog so a fresh install can ring up a sale immediately.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	seedUser(db, "ADMIN_EMAIL", "admin@pharmaplus.local", "ADMIN_PASSWORD", "admin123", "Admin", "User", "admin")
	seedUser(db, "CASHIER_EMAIL", "cashier@pharmaplus.local", "CASHIER_PASSWORD", "cashier123", "Default", "Cashier", "cashier")

	seedCatalog(db)

	log.Println("Default data seeding completed")
	return nil
}

func seedUser(db *gorm.DB, emailKey, emailDefault, passwordKey, passwordDefault, firstName, lastName, role string) {
	viper.SetDefault(emailKey, emailDefault)
	viper.SetDefault(passwordKey, passwordDefault)
	email := viper.GetString(emailKey)

	var existing entity.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(viper.GetString(passwordKey)), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash %s password: %v", role, err)
		return
	}
	user := entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Warning: failed to create %s user: %v", role, err)
		return
	}
	log.Printf("Created default %s user: %s", role, email)
}

func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []entity.Product{
		{ItemCode: "MED001", Name: "Paracetamol 500mg", UnitPrice: decimal.NewFromFloat(5.99), Unit: "tablet", Category: "Pain Relief", Brand: "Biogesic", Dosage: "500mg", CurrentStock: 500, ReorderPoint: 100, Active: true},
		{ItemCode: "MED002", Name: "Amoxicillin 250mg", UnitPrice: decimal.NewFromFloat(12.99), Unit: "capsule", Category: "Antibiotics", Brand: "Amoxil", Dosage: "250mg", RequiresPrescription: true, CurrentStock: 200, ReorderPoint: 50, Active: true},
		{ItemCode: "MED003", Name: "Cetirizine 10mg", UnitPrice: decimal.NewFromFloat(8.50), Unit: "tablet", Category: "Antihistamine", Brand: "Zyrtec", Dosage: "10mg", CurrentStock: 300, ReorderPoint: 75, Active: true},
		{ItemCode: "MED004", Name: "Omeprazole 20mg", UnitPrice: decimal.NewFromFloat(15.75), Unit: "capsule", Category: "Antacid", Brand: "Losec", Dosage: "20mg", CurrentStock: 150, ReorderPoint: 40, Active: true},
		{ItemCode: "MED005", Name: "Ascorbic Acid 500mg", UnitPrice: decimal.NewFromFloat(3.25), Unit: "tablet", Category: "Vitamins", Brand: "Cecon", Dosage: "500mg", CurrentStock: 800, ReorderPoint: 150, Active: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", products[i].ItemCode, err)
		}
	}
	log.Printf("Seeded %d catalog products", len(products))
}
