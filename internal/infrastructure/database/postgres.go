package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/config"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User entities
		&entity.User{},

		// Catalog entities
		&entity.ExpenseCategory{},
		&entity.Product{},
		&entity.ProductPriceHistory{},
		&entity.TransportCategory{},
		&entity.TransportSubType{},
		&entity.Supplier{},

		// Ledger entities
		&entity.Expense{},
		&entity.Purchase{},
		&entity.Transport{},
		&entity.Debt{},

		// Order entities
		&entity.Status{},
		&entity.Order{},
		&entity.PhoneNumber{},
		&entity.OrderHistory{},

		// Worker entities
		&entity.Worker{},
		&entity.WorkerHistory{},

		// System entities
		&entity.SystemSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (statuses,
// categories, settings row, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Default order statuses
	statuses := []entity.Status{
		{Name: "New", Color: "#FFC107"},
		{Name: "In production", Color: "#3B82F6"},
		{Name: "Delivered", Color: "#10B981"},
		{Name: "Cancelled", Color: "#EF4444"},
	}
	for i := range statuses {
		var existing entity.Status
		if err := db.Where("name = ?", statuses[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&statuses[i]).Error; err != nil {
				log.Printf("Warning: failed to create status %s: %v", statuses[i].Name, err)
			}
		}
	}

	// Default expense categories
	categories := []entity.ExpenseCategory{
		{Name: "Raw materials", Color: "#3B82F6"},
		{Name: "Utilities", Color: "#F59E0B"},
		{Name: "Maintenance", Color: "#8B5CF6"},
		{Name: "General", Color: "#6B7280"},
	}
	for i := range categories {
		var existing entity.ExpenseCategory
		if err := db.Where("name = ?", categories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", categories[i].Name, err)
			}
		}
	}

	// Singleton settings row
	var settings entity.SystemSettings
	if err := db.First(&settings).Error; err != nil {
		if err := db.Create(&entity.SystemSettings{}).Error; err != nil {
			log.Printf("Warning: failed to create settings row: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					ID:       uuid.New(),
					Username: adminUsername,
					Password: string(hashedPassword),
					FullName: "Administrator",
					Role:     "admin",
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
